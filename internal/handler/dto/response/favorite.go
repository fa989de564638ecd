package response

import (
	"time"

	"storefront/internal/infra/repository"
)

type FavoriteResponse struct {
	ID        int64     `json:"id"`
	UserPhone string    `json:"userPhone"`
	ProductID int64     `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromFavorites(favs []repository.Favorite) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(favs))
	for _, f := range favs {
		out = append(out, FavoriteResponse{
			ID:        f.ID,
			UserPhone: f.UserPhone,
			ProductID: f.ProductID,
			CreatedAt: f.CreatedAt,
		})
	}
	return out
}
