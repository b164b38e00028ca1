// Package seeder fills a fresh deployment with demo data through the
// application services, so seeded rows obey the same rules as API traffic.
package seeder

import "context"

type Seeder interface {
	Name() string
	Run(ctx context.Context) error
}
