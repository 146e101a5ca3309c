package domain

// User 登录/注册共用的账号表；列名沿用旧库 schema。
// password 列存 bcrypt 哈希，任何响应里都不回传。
type User struct {
	UserID       uint   `gorm:"column:userId;primaryKey;autoIncrement" json:"userId"`
	UserName     string `gorm:"column:userName;size:64" json:"userName"`
	EmailID      string `gorm:"column:emailId;uniqueIndex;size:191" json:"emailId"`
	PasswordHash string `gorm:"column:password;size:100" json:"-"`
	Role         string `gorm:"column:role;size:16;default:user" json:"role"` // "user"/"admin"
}

func (User) TableName() string { return "users" }

// Safe 登录响应只投影安全字段
func (u User) Safe() map[string]any {
	return map[string]any{
		"userId":   u.UserID,
		"userName": u.UserName,
		"emailId":  u.EmailID,
		"role":     u.Role,
	}
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id uint) (*User, error)
	FindByEmail(email string) (*User, error)
	List(offset, limit int, q string) ([]User, int64, error)
	Save(u *User) error
	Delete(id uint) error
}
