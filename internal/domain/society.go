package domain

// Society 社区活动营销记录（society_marketing）
type Society struct {
	SID               uint    `gorm:"column:s_id;primaryKey;autoIncrement" json:"s_id"`
	SName             string  `gorm:"column:s_name;size:128" json:"s_name"`
	SArea             string  `gorm:"column:s_area;size:128" json:"s_area"`
	SCity             string  `gorm:"column:s_city;size:64" json:"s_city"`
	SPincode          string  `gorm:"column:s_pincode;size:10" json:"s_pincode"`
	ContactPersonName string  `gorm:"column:s_contact_person_name;size:64" json:"s_contact_person_name"`
	ContactNum        string  `gorm:"column:s_contact_num;size:20" json:"s_contact_num"`
	SNoFlats          int     `gorm:"column:s_no_flats" json:"s_no_flats"`
	SType             string  `gorm:"column:s_type;size:32" json:"s_type"` // Residential / Commercial
	SEventType        string  `gorm:"column:s_event_type;size:128" json:"s_event_type"`
	EventDate         string  `gorm:"column:event_date;type:date" json:"event_date"`
	EventTime         string  `gorm:"column:event_time;type:time" json:"event_time"`
	SAddress          string  `gorm:"column:s_address;size:255" json:"s_address"`
	SLat              float64 `gorm:"column:s_lat" json:"s_lat"`
	SLong             float64 `gorm:"column:s_long" json:"s_long"`
	SCrowd            int     `gorm:"column:s_crowd" json:"s_crowd"`
	ApprovalStatus    string  `gorm:"column:approval_status;size:32" json:"approval_status"`
	EventStatus       string  `gorm:"column:event_status;size:32" json:"event_status"`
	ExpectedCost      float64 `gorm:"column:expected_cost" json:"expected_cost"`
	ActualCost        float64 `gorm:"column:actual_cost" json:"actual_cost"`
	ResponsiblePerson string  `gorm:"column:responsible_person;size:64" json:"responsible_person"`
	FollowUpDate      string  `gorm:"column:follow_up_date;type:date" json:"follow_up_date"`
	Remarks           string  `gorm:"column:remarks;size:255" json:"remarks"`
}

func (Society) TableName() string { return "society_marketing" }
