package generator

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/ingemar0720/lead-seeder/dbmodel"
)

var safeDomains = []string{"example.com", "example.net", "example.org"}

// Generator builds synthetic leads. It is not safe for concurrent use.
type Generator struct {
	faker *gofakeit.Faker
}

// New returns a Generator seeded with seed. A zero seed draws from crypto/rand.
func New(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Lead generates one lead with a fresh name, email and phone.
func (g *Generator) Lead() dbmodel.DBModelLead {
	first := g.word(g.faker.FirstName, "Lead")
	last := g.word(g.faker.LastName, "Contact")
	return dbmodel.DBModelLead{
		FullName: first + " " + last,
		Email:    g.SafeEmail(),
		Phone:    g.Phone(),
	}
}

// SafeEmail returns an address on one of the reserved example domains.
func (g *Generator) SafeEmail() string {
	local := strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' {
			return r
		}
		return -1
	}, g.faker.Username())
	if local == "" {
		local = fmt.Sprintf("lead%d", g.faker.Number(1000, 9999))
	}
	return local + "@" + g.faker.RandomString(safeDomains)
}

// Phone returns the fixed prefix followed by six digits in [100000, 999999].
func (g *Generator) Phone() string {
	return fmt.Sprintf("%s%06d", dbmodel.PhonePrefix, g.faker.Number(100000, 999999))
}

const maxNameAttempts = 5

// word strips whitespace from generated name parts so that a full name always
// has exactly one separating space. fallback is used when the source keeps
// yielding blanks.
func (g *Generator) word(gen func() string, fallback string) string {
	for i := 0; i < maxNameAttempts; i++ {
		if w := strings.Join(strings.Fields(gen()), ""); w != "" {
			return w
		}
	}
	return fallback
}
