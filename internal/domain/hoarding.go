package domain

// Hoarding 广告牌点位（hoardings）
type Hoarding struct {
	HID               uint    `gorm:"column:h_id;primaryKey;autoIncrement" json:"h_id"`
	HName             string  `gorm:"column:h_name;size:128" json:"h_name"`
	Address           string  `gorm:"column:address;size:255" json:"address"`
	City              string  `gorm:"column:city;size:64" json:"city"`
	State             string  `gorm:"column:state;size:64" json:"state"`
	Latitude          float64 `gorm:"column:latitude" json:"latitude"`
	Longitude         float64 `gorm:"column:longitude" json:"longitude"`
	Size              string  `gorm:"column:size;size:32" json:"size"`
	OwnerName         string  `gorm:"column:owner_name;size:64" json:"owner_name"`
	ContactPerson     string  `gorm:"column:contact_person;size:64" json:"contact_person"`
	ContactNumber     string  `gorm:"column:contact_number;size:20" json:"contact_number"`
	AdStartDate       string  `gorm:"column:ad_start_date;type:date" json:"ad_start_date"`
	AdEndDate         string  `gorm:"column:ad_end_date;type:date" json:"ad_end_date"`
	Status            string  `gorm:"column:status;size:32" json:"status"` // Available / Occupied / Under Maintenance / Booked
	RentalCost        float64 `gorm:"column:rental_cost" json:"rental_cost"`
	ContractStartDate string  `gorm:"column:contract_start_date;type:date" json:"contract_start_date"`
	ContractEndDate   string  `gorm:"column:contract_end_date;type:date" json:"contract_end_date"`
	Notes             string  `gorm:"column:notes;size:255" json:"notes"`
}

func (Hoarding) TableName() string { return "hoardings" }
