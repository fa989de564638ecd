package request

type AddFavoriteRequest struct {
	Phone     string `json:"phone" binding:"required"`
	ProductID int64  `json:"product_id" binding:"required"`
}
