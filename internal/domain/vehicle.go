package domain

// Vehicle 车辆广告投放记录（vehicle_marketing）
type Vehicle struct {
	VID               uint    `gorm:"column:v_id;primaryKey;autoIncrement" json:"v_id"`
	VType             string  `gorm:"column:v_type;size:32" json:"v_type"`
	VNumber           string  `gorm:"column:v_number;size:32" json:"v_number"`
	VArea             string  `gorm:"column:v_area;size:128" json:"v_area"`
	VCity             string  `gorm:"column:v_city;size:64" json:"v_city"`
	VStartDate        string  `gorm:"column:v_start_date;type:date" json:"v_start_date"`
	VEndDate          string  `gorm:"column:v_end_date;type:date" json:"v_end_date"`
	VDurationDays     int     `gorm:"column:v_duration_days" json:"v_duration_days"`
	ExpectedCrowd     int     `gorm:"column:expected_crowd" json:"expected_crowd"`
	ContactPersonName string  `gorm:"column:v_contact_person_name;size:64" json:"v_contact_person_name"`
	ContactNum        string  `gorm:"column:v_contact_num;size:20" json:"v_contact_num"`
	VCost             float64 `gorm:"column:v_cost" json:"v_cost"`
	PaymentStatus     string  `gorm:"column:payment_status;size:32" json:"payment_status"`
	Remarks           string  `gorm:"column:remarks;size:255" json:"remarks"`
}

func (Vehicle) TableName() string { return "vehicle_marketing" }
