package models

type MenuItem struct {
	ID       int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"not null"                 json:"name"`
	Price    float64 `gorm:"not null;check:price>=0"  json:"price"`
	Category string  `json:"category"`
}

// Order is append-only: rows are created at checkout and never updated.
// ItemSummary holds the display text exactly as the workflow supplied it;
// Lines carry the same purchase in structured form.
type Order struct {
	ID          int         `gorm:"primaryKey;autoIncrement" json:"id"`
	Total       float64     `gorm:"not null"                 json:"total"`
	PlacedAt    string      `gorm:"not null"                 json:"placed_at"`
	ItemSummary string      `gorm:"not null"                 json:"item_summary"`
	Lines       []OrderLine `json:"lines"`
}

type OrderLine struct {
	ID        int     `gorm:"primaryKey;autoIncrement"   json:"id"`
	OrderID   int     `gorm:"index;not null"             json:"order_id"`
	MenuID    int     `gorm:"not null"                   json:"menu_id"`
	Name      string  `gorm:"not null"                   json:"name"`
	Quantity  int     `gorm:"not null;check:quantity>0"  json:"quantity"`
	UnitPrice float64 `gorm:"not null"                   json:"unit_price"`
	LineTotal float64 `gorm:"not null"                   json:"line_total"`
}
