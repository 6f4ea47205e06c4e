package seed

import (
	"log"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/mabolhal/sanapottery/models"
	"github.com/mabolhal/sanapottery/store"
)

// Products is the starter catalog loaded with the -seed flag.
func Products() []models.Product {
	return []models.Product{
		{
			NameEn:        "Rustic Terracotta Bowl",
			NameFr:        "Bol en Terre Cuite Rustique",
			DescriptionEn: "A handcrafted terracotta bowl with organic texture and warm earth tones. Perfect for serving salads or displaying fruit.",
			DescriptionFr: "Un bol en terre cuite fait main avec une texture organique et des tons chauds de terre. Parfait pour servir des salades ou présenter des fruits.",
			Price:         decimal.RequireFromString("45.00"),
			Category:      "bowls",
			ImageURL:      "/uploads/products/terracotta-bowl.png",
			ImageURLs:     pq.StringArray{"/uploads/products/terracotta-bowl.png"},
			InStock:       true,
			Featured:      true,
			Dimensions:    "20cm diameter x 8cm height",
			Materials:     "Terracotta clay, natural glaze",
			CareText:      "Hand wash recommended, microwave safe",
		},
		{
			NameEn:        "Sage Green Vase",
			NameFr:        "Vase Vert Sauge",
			DescriptionEn: "An elegant vase in calming sage green tones, hand-thrown and finished with a smooth matte glaze.",
			DescriptionFr: "Un vase élégant aux tons vert sauge apaisants, tourné à la main et fini avec un glaçage mat lisse.",
			Price:         decimal.RequireFromString("68.00"),
			Category:      "vases",
			ImageURL:      "/uploads/products/sage-vase.png",
			ImageURLs:     pq.StringArray{"/uploads/products/sage-vase.png"},
			InStock:       true,
			Featured:      true,
			Dimensions:    "15cm diameter x 25cm height",
			Materials:     "Stoneware clay, matte glaze",
			CareText:      "Wipe clean with damp cloth",
		},
		{
			NameEn:        "Morning Coffee Mug",
			NameFr:        "Tasse à Café du Matin",
			DescriptionEn: "Start your day with this perfectly sized coffee mug, featuring a comfortable handle and warm glaze.",
			DescriptionFr: "Commencez votre journée avec cette tasse à café de taille parfaite, dotée d'une anse confortable et d'un glaçage chaleureux.",
			Price:         decimal.RequireFromString("32.00"),
			Category:      "mugs",
			ImageURL:      "/uploads/products/coffee-mug.png",
			ImageURLs:     pq.StringArray{"/uploads/products/coffee-mug.png"},
			InStock:       true,
			Materials:     "Stoneware clay",
			Dimensions:    "9cm diameter x 10cm height",
			CareText:      "Dishwasher and microwave safe",
		},
		{
			NameEn:        "Artisan Dinner Plate",
			NameFr:        "Assiette de Dîner Artisanale",
			DescriptionEn: "A beautifully crafted dinner plate with subtle variations that make each piece unique.",
			DescriptionFr: "Une assiette de dîner magnifiquement conçue avec des variations subtiles qui rendent chaque pièce unique.",
			Price:         decimal.RequireFromString("52.00"),
			Category:      "plates",
			ImageURL:      "/uploads/products/dinner-plate.png",
			ImageURLs:     pq.StringArray{"/uploads/products/dinner-plate.png"},
			InStock:       true,
			Dimensions:    "27cm diameter",
			Materials:     "Porcelain, food-safe glaze",
			CareText:      "Dishwasher safe",
		},
		{
			NameEn:        "Minimalist Serving Bowl",
			NameFr:        "Bol de Service Minimaliste",
			DescriptionEn: "A clean, modern serving bowl with smooth lines and a pristine white finish.",
			DescriptionFr: "Un bol de service épuré et moderne avec des lignes lisses et une finition blanche immaculée.",
			Price:         decimal.RequireFromString("58.00"),
			Category:      "bowls",
			ImageURL:      "/uploads/products/serving-bowl.png",
			ImageURLs:     pq.StringArray{"/uploads/products/serving-bowl.png"},
			InStock:       true,
			Dimensions:    "25cm diameter x 10cm height",
			Materials:     "Porcelain",
			CareText:      "Dishwasher and microwave safe",
		},
		{
			NameEn:        "Textured Ceramic Vase",
			NameFr:        "Vase en Céramique Texturé",
			DescriptionEn: "A statement vase featuring intricate hand-carved textures and a natural finish.",
			DescriptionFr: "Un vase remarquable avec des textures sculptées à la main et une finition naturelle.",
			Price:         decimal.RequireFromString("84.00"),
			Category:      "vases",
			ImageURL:      "/uploads/products/textured-vase.png",
			ImageURLs:     pq.StringArray{"/uploads/products/textured-vase.png"},
			InStock:       true,
			Dimensions:    "18cm diameter x 30cm height",
			Materials:     "Stoneware clay, natural finish",
			CareText:      "Wipe clean with damp cloth",
		},
	}
}

// Run inserts the starter catalog, skipping nothing; it is intended for a
// fresh database.
func Run(s store.Storage) error {
	for _, p := range Products() {
		if err := s.CreateProduct(&p); err != nil {
			return err
		}
		log.Printf("🌱 Seeded product %s (%s)", p.NameEn, p.ID)
	}
	return nil
}
