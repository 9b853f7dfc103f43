package models

// FeaturedProduct est le document singleton de configuration vitrine,
// upserté sous la clé fixe "featured" dans la collection config.
type FeaturedProduct struct {
	ID        string `json:"-" bson:"_id"`
	ProductID string `json:"productId" bson:"productId"`
	BadgeText string `json:"badgeText" bson:"badgeText"`
}
