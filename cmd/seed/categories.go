package main

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/repository"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"
)

type categorySeed struct {
	Name        string
	Description string
	Children    []categorySeed
}

// Category names are unique across the whole tree, so the automotive accessories child carries
// its own name instead of repeating the fashion one.
var defaultCategories = []categorySeed{
	{
		Name:        "Electronics",
		Description: "Electronic devices and gadgets",
		Children: []categorySeed{
			{Name: "Mobile Phones", Description: "Smartphones and accessories"},
			{Name: "Laptops & Computers", Description: "Laptops, desktops, and computer accessories"},
			{Name: "Audio & Headphones", Description: "Speakers, headphones, and audio equipment"},
			{Name: "Cameras", Description: "Digital cameras and photography equipment"},
			{Name: "Gaming", Description: "Gaming consoles and accessories"},
		},
	},
	{
		Name:        "Fashion",
		Description: "Clothing and fashion accessories",
		Children: []categorySeed{
			{Name: "Men's Clothing", Description: "Men's fashion and apparel"},
			{Name: "Women's Clothing", Description: "Women's fashion and apparel"},
			{Name: "Shoes", Description: "Footwear for all occasions"},
			{Name: "Accessories", Description: "Fashion accessories and jewelry"},
			{Name: "Bags", Description: "Handbags, backpacks, and luggage"},
		},
	},
	{
		Name:        "Home & Garden",
		Description: "Home improvement and garden supplies",
		Children: []categorySeed{
			{Name: "Furniture", Description: "Home and office furniture"},
			{Name: "Kitchen & Dining", Description: "Kitchenware and dining essentials"},
			{Name: "Home Decor", Description: "Decorative items and home accessories"},
			{Name: "Garden & Outdoor", Description: "Gardening tools and outdoor equipment"},
			{Name: "Lighting", Description: "Indoor and outdoor lighting solutions"},
		},
	},
	{
		Name:        "Health & Beauty",
		Description: "Health and beauty products",
		Children: []categorySeed{
			{Name: "Skincare", Description: "Skincare products and treatments"},
			{Name: "Makeup", Description: "Cosmetics and makeup products"},
			{Name: "Health Supplements", Description: "Vitamins and health supplements"},
			{Name: "Personal Care", Description: "Personal hygiene and care products"},
			{Name: "Fitness Equipment", Description: "Home fitness and exercise equipment"},
		},
	},
	{
		Name:        "Sports & Outdoors",
		Description: "Sports and outdoor activities",
		Children: []categorySeed{
			{Name: "Exercise & Fitness", Description: "Fitness equipment and accessories"},
			{Name: "Sports Apparel", Description: "Athletic clothing and sportswear"},
			{Name: "Outdoor Gear", Description: "Camping, hiking, and outdoor equipment"},
			{Name: "Team Sports", Description: "Equipment for team sports"},
			{Name: "Water Sports", Description: "Swimming and water sports equipment"},
		},
	},
	{
		Name:        "Books & Media",
		Description: "Books, movies, and digital media",
		Children: []categorySeed{
			{Name: "Books", Description: "Physical and digital books"},
			{Name: "Movies & TV", Description: "DVDs, Blu-rays, and digital movies"},
			{Name: "Music", Description: "CDs, vinyl records, and digital music"},
			{Name: "Games", Description: "Board games, puzzles, and toys"},
			{Name: "Educational", Description: "Educational materials and courses"},
		},
	},
	{
		Name:        "Automotive",
		Description: "Car parts and automotive accessories",
		Children: []categorySeed{
			{Name: "Car Electronics", Description: "Car audio, navigation, and electronics"},
			{Name: "Car Care", Description: "Car cleaning and maintenance products"},
			{Name: "Car Accessories", Description: "Car accessories and decorations"},
			{Name: "Parts & Tools", Description: "Replacement parts and automotive tools"},
			{Name: "Motorcycle", Description: "Motorcycle parts and accessories"},
		},
	},
}

// seedCategories creates the default tree through the category usecase when the catalog is empty.
// Roots are ordered by creation position across the whole run and children by their index.
func seedCategories(
	ctx context.Context,
	categoryUC usecase.CategoryUsecase,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) (int, error) {
	existing, err := categoryRepo.Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}
	if existing > 0 {
		logger.Info("Categories already exist, skipping seeding", slog.Int64("count", existing))

		return 0, nil
	}

	created := 0
	for _, root := range defaultCategories {
		parent, err := categoryUC.Create(ctx, &usecase.CreateCategoryInput{
			Name:        root.Name,
			Description: root.Description,
			SortOrder:   created,
		})
		if err != nil {
			return created, errors.Wrapf(err, "failed to create category %q", root.Name)
		}
		created++
		logger.Info("Created category", slog.String("name", parent.Name), slog.String("slug", parent.Slug))

		for i, child := range root.Children {
			category, err := categoryUC.Create(ctx, &usecase.CreateCategoryInput{
				Name:        child.Name,
				Description: child.Description,
				ParentID:    &parent.ID,
				SortOrder:   i,
			})
			if err != nil {
				return created, errors.Wrapf(err, "failed to create category %q", child.Name)
			}
			created++
			logger.Debug("Created child category", slog.String("name", category.Name), slog.String("parent", parent.Name))
		}
	}

	logger.Info("Seeded categories", slog.Int("count", created))

	return created, nil
}
