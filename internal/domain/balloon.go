package domain

// Balloon 气球/飞艇广告点位（balloon_marketing）
type Balloon struct {
	BID               uint    `gorm:"column:b_id;primaryKey;autoIncrement" json:"b_id"`
	BLocationName     string  `gorm:"column:b_location_name;size:128" json:"b_location_name"`
	BArea             string  `gorm:"column:b_area;size:128" json:"b_area"`
	BCity             string  `gorm:"column:b_city;size:64" json:"b_city"`
	BAddress          string  `gorm:"column:b_address;size:255" json:"b_address"`
	BLat              float64 `gorm:"column:b_lat" json:"b_lat"`
	BLong             float64 `gorm:"column:b_long" json:"b_long"`
	BSize             string  `gorm:"column:b_size;size:32" json:"b_size"`
	BType             string  `gorm:"column:b_type;size:32" json:"b_type"` // Sky / Helium / Inflatable
	BHeight           int     `gorm:"column:b_height" json:"b_height"`
	BDurationDays     int     `gorm:"column:b_duration_days" json:"b_duration_days"`
	BStartDate        string  `gorm:"column:b_start_date;type:date" json:"b_start_date"`
	BEndDate          string  `gorm:"column:b_end_date;type:date" json:"b_end_date"`
	ExpectedCrowd     int     `gorm:"column:expected_crowd" json:"expected_crowd"`
	ContactPersonName string  `gorm:"column:b_contact_person_name;size:64" json:"b_contact_person_name"`
	ContactNum        string  `gorm:"column:b_contact_num;size:20" json:"b_contact_num"`
	BCost             float64 `gorm:"column:b_cost" json:"b_cost"`
	PaymentStatus     string  `gorm:"column:payment_status;size:32" json:"payment_status"`
	Remarks           string  `gorm:"column:remarks;size:255" json:"remarks"`
}

func (Balloon) TableName() string { return "balloon_marketing" }
