package select_spot

// SelectSpotRequest HTTP request model. Повторный выбор уже выбранного
// места снимает выбор.
type SelectSpotRequest struct {
	SpotID string `json:"spotId"`
}
