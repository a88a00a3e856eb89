package domain

// Customer is created fresh on every checkout. Repeat buyers get a new row;
// reconciliation by phone is a reporting policy the store owner has not
// decided on, so it is deliberately not done here.
type Customer struct {
	ID      string `json:"id" gorm:"primaryKey;size:48"`
	Name    string `json:"name" gorm:"size:128;not null"`
	Phone   string `json:"phone" gorm:"size:10;not null"`
	Address string `json:"address,omitempty" gorm:"size:255"`
}
