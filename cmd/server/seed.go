package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/service"
	"github.com/MKhiriev/acme-store/models"
)

// seedDemoData loads the demo fixtures into a freshly reset schema: four
// users, three products, and one favorite linking moe to the coffee mug.
// Users and products are independent, so they are created concurrently; the
// favorite needs both of its parents and is created last.
func seedDemoData(ctx context.Context, services *service.Services, log *logger.Logger) error {
	demoUsers := []struct {
		username string
		password string
	}{
		{"moe", "passwordForMoe"},
		{"lucy", "passwordForLucy"},
		{"larry", "passwordForLarry"},
		{"ethyl", "passwordForEthyl"},
	}
	demoProducts := []string{"coffeeMug", "wirelessCharger", "gamingMouse"}

	var (
		wg sync.WaitGroup

		mu       sync.Mutex
		users    = make(map[string]models.User, len(demoUsers))
		products = make(map[string]models.Product, len(demoProducts))
		errs     []error
	)

	for _, du := range demoUsers {
		du := du
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := services.UserService.Register(ctx, du.username, du.password)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("seed user %s: %w", du.username, err))
				return
			}
			users[user.Username] = user
		}()
	}

	for _, name := range demoProducts {
		name := name
		wg.Add(1)
		go func() {
			defer wg.Done()
			product, err := services.ProductService.Create(ctx, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("seed product %s: %w", name, err))
				return
			}
			products[product.Name] = product
		}()
	}

	wg.Wait()

	if len(errs) > 0 {
		return errs[0]
	}

	log.Info().
		Str("moe", users["moe"].ID.String()).
		Str("lucy", users["lucy"].ID.String()).
		Str("larry", users["larry"].ID.String()).
		Str("ethyl", users["ethyl"].ID.String()).
		Msg("seeded users")
	log.Info().
		Str("coffeeMug", products["coffeeMug"].ID.String()).
		Str("wirelessCharger", products["wirelessCharger"].ID.String()).
		Str("gamingMouse", products["gamingMouse"].ID.String()).
		Msg("seeded products")

	favorite, err := services.FavoriteService.Add(ctx, users["moe"].ID, products["coffeeMug"].ID)
	if err != nil {
		return fmt.Errorf("seed favorite: %w", err)
	}

	log.Info().Str("favorite_id", favorite.ID.String()).Msg("seeded favorite for moe")

	return nil
}
