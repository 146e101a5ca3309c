package domain

// Screen 户外大屏点位（outdoormarketingscreens，旧库列名为 PascalCase）
type Screen struct {
	ScreenID             uint    `gorm:"column:ScreenID;primaryKey;autoIncrement" json:"ScreenID"`
	ScreenName           string  `gorm:"column:ScreenName;size:128" json:"ScreenName"`
	Location             string  `gorm:"column:Location;size:255" json:"Location"`
	City                 string  `gorm:"column:City;size:64" json:"City"`
	State                string  `gorm:"column:State;size:64" json:"State"`
	Latitude             float64 `gorm:"column:Latitude" json:"Latitude"`
	Longitude            float64 `gorm:"column:Longitude" json:"Longitude"`
	ScreenType           string  `gorm:"column:ScreenType;size:32" json:"ScreenType"`
	Size                 string  `gorm:"column:Size;size:32" json:"Size"`
	Resolution           string  `gorm:"column:Resolution;size:32" json:"Resolution"`
	OwnerName            string  `gorm:"column:OwnerName;size:64" json:"OwnerName"`
	ContactPerson        string  `gorm:"column:ContactPerson;size:64" json:"ContactPerson"`
	ContactNumber        string  `gorm:"column:ContactNumber;size:20" json:"ContactNumber"`
	OnboardingDate       string  `gorm:"column:OnboardingDate;type:date" json:"OnboardingDate"`
	Status               string  `gorm:"column:Status;size:32" json:"Status"` // Active / Inactive / Maintenance / Pending
	RentalCost           float64 `gorm:"column:RentalCost" json:"RentalCost"`
	ContractStartDate    string  `gorm:"column:ContractStartDate;type:date" json:"ContractStartDate"`
	ContractEndDate      string  `gorm:"column:ContractEndDate;type:date" json:"ContractEndDate"`
	PowerBackup          bool    `gorm:"column:PowerBackup" json:"PowerBackup"`
	InternetConnectivity string  `gorm:"column:InternetConnectivity;size:32" json:"InternetConnectivity"`
	Notes                string  `gorm:"column:Notes;size:255" json:"Notes"`
}

func (Screen) TableName() string { return "outdoormarketingscreens" }
