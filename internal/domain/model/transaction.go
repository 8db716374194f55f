package model

import "time"

//在庫変動の台帳（append-only）

type TransactionType string

const (
	TransactionTypeInbound  TransactionType = "INBOUND"
	TransactionTypeOutbound TransactionType = "OUTBOUND"
)

type Transaction struct {
	ID              string          `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID       string          `gorm:"type:uuid;not null;index" json:"product_id"`
	Product         *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Type            TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	QuantityChanged int64           `gorm:"not null;check:chk_transactions_quantity_changed,quantity_changed > 0" json:"quantity_changed"`
	Timestamp       time.Time       `gorm:"not null;index" json:"timestamp"`
}
