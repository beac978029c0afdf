package service

// ShopCard is the contact payload encoded into a shop's QR code.
type ShopCard struct {
	ShopName     string `json:"shop_name"`
	BusinessType string `json:"business_type"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateShopCardQR generates a PNG QR code encoding the shop's contact card.
	GenerateShopCardQR(card ShopCard) ([]byte, error)
}
