package seed

import (
	"context"
	"fmt"
	"log"

	"studio-listing-backend/internal/model"
	"studio-listing-backend/internal/store"
)

// Store is the part of store.Store the seeder needs.
type Store interface {
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, d store.Draft) (model.Studio, error)
}

// Run inserts the sample studios when the store is empty and returns how
// many were created. A non-empty store is left untouched.
func Run(ctx context.Context, s Store) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count studios before seeding: %w", err)
	}
	if n > 0 {
		log.Printf("Store already holds %d studios; skipping sample data.", n)
		return 0, nil
	}

	samples := Samples()
	for i, d := range samples {
		if _, err := s.Insert(ctx, d); err != nil {
			return i, fmt.Errorf("failed to insert sample studio %q: %w", d.Name, err)
		}
	}

	log.Printf("Sample studio data initialized successfully! Created %d studios.", len(samples))
	return len(samples), nil
}

// Samples returns the fixed sample studios in insertion order.
func Samples() []store.Draft {
	return []store.Draft{
		sample(
			"Creative Sound Studio",
			"Professional recording studio with state-of-the-art equipment. Perfect for music production, podcasts, and voice-overs.",
			"Mumbai, Maharashtra",
			2500,
			"https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?w=500",
			"info@creativesound.com",
			"+91-9876543210",
		),
		sample(
			"Harmony Music Hub",
			"Spacious studio with excellent acoustics and professional mixing capabilities. Ideal for bands and solo artists.",
			"Bangalore, Karnataka",
			3000,
			"https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=500",
			"contact@harmonymusic.com",
			"+91-9876543211",
		),
		sample(
			"Digital Dreams Studio",
			"Modern digital recording facility with the latest software and hardware. Specializing in electronic music production.",
			"Delhi, NCR",
			2200,
			"https://images.unsplash.com/photo-1571330735066-03aaa9429d89?w=500",
			"hello@digitaldreams.com",
			"+91-9876543212",
		),
		sample(
			"Acoustic Vibes Studio",
			"Intimate studio perfect for acoustic recordings and singer-songwriter sessions. Warm and cozy atmosphere.",
			"Chennai, Tamil Nadu",
			1800,
			"https://images.unsplash.com/photo-1519892300165-cb5542fb47c7?w=500",
			"info@acousticvibes.com",
			"+91-9876543213",
		),
		sample(
			"Pro Audio Labs",
			"High-end professional studio with Grammy-winning engineers. Full production services available.",
			"Pune, Maharashtra",
			4500,
			"https://images.unsplash.com/photo-1598653222000-6b7b7a552625?w=500",
			"bookings@proaudiolabs.com",
			"+91-9876543214",
		),
	}
}

func sample(name, description, location string, price float64, imageURL, email, phone string) store.Draft {
	return store.Draft{
		Name:         name,
		Description:  description,
		Location:     location,
		PricePerHour: price,
		ImageURL:     &imageURL,
		ContactEmail: &email,
		ContactPhone: &phone,
		IsAvailable:  true,
	}
}
