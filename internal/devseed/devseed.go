// Package devseed fills an empty employee API with sample records for local development.
package devseed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tamathecxder/randomail"

	"github.com/UnknownOlympus/employee-directory/internal/lib/logger/sl"
	"github.com/UnknownOlympus/employee-directory/internal/models"
)

// ErrSeedFailed is returned when at least one sample employee could not be created.
var ErrSeedFailed = errors.New("seeding failed")

var (
	firstNames = []string{"John", "Jane", "Will", "Anna", "Omar", "Lena", "Ivan", "Mia"}
	lastNames  = []string{"Smith", "Doe", "Smithson", "Blacksmith", "Novak", "Garcia", "Petrenko"}
	roles      = []string{"Engineer", "QA", "Designer", "Manager", "Support"}
)

// Creator is the part of the employee API the seeder needs.
type Creator interface {
	Create(ctx context.Context, input models.EmployeeInput) error
}

// Sample returns the i-th sample employee. Names and roles are deterministic, emails are random.
func Sample(i int) models.EmployeeInput {
	return models.EmployeeInput{
		Name:  firstNames[i%len(firstNames)] + " " + lastNames[i%len(lastNames)],
		Email: randomail.GenerateRandomEmail(),
		Role:  roles[i%len(roles)],
	}
}

// Run creates count sample employees. It keeps going after a failed create and reports
// the number of failures at the end.
func Run(ctx context.Context, log *slog.Logger, api Creator, count int) error {
	failures := 0

	for i := range count {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("seeding interrupted: %w", err)
		}

		input := Sample(i)
		if err := api.Create(ctx, input); err != nil {
			failures++
			log.WarnContext(ctx, "failed to seed employee", "name", input.Name, sl.Err(err))
			continue
		}
		log.DebugContext(ctx, "seeded employee", "name", input.Name, "email", input.Email)
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d employees were not created", ErrSeedFailed, failures, count)
	}

	log.InfoContext(ctx, "seeded employees", "count", count)

	return nil
}
