package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"admedia-api/internal/domain"
)

func TestCounts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "dash.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.Vehicle{}, &domain.Society{}, &domain.Balloon{},
		&domain.Screen{}, &domain.Hoarding{},
	))

	require.NoError(t, db.Create(&domain.Vehicle{VType: "Bus"}).Error)
	require.NoError(t, db.Create(&domain.Vehicle{VType: "Auto"}).Error)
	require.NoError(t, db.Create(&domain.Hoarding{HName: "Junction"}).Error)

	r := gin.New()
	New(db, nil, zap.NewNop()).MountAPI(r.Group(""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard/counts", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out Counts
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.EqualValues(t, 2, out.Vehicles)
	assert.EqualValues(t, 0, out.Societies)
	assert.EqualValues(t, 0, out.Balloons)
	assert.EqualValues(t, 0, out.Screens)
	assert.EqualValues(t, 1, out.Hoardings)
}
