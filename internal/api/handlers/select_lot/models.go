package select_lot

// SelectLotRequest HTTP request model
type SelectLotRequest struct {
	LotID string `json:"lotId"`
}
