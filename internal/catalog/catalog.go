// Package catalog holds the read-only reference data shown by the shell:
// transport options, subscription plans, sample trips and the profile card.
package catalog

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// TransportID identifies one of the fixed transport modes.
type TransportID string

const (
	Marshrutka TransportID = "marshrutka"
	Bus        TransportID = "bus"
	Taxi       TransportID = "taxi"
	Carpool    TransportID = "carpool"
)

// KnownTransportIDs returns every transport id in display order.
func KnownTransportIDs() []TransportID {
	return []TransportID{Marshrutka, Bus, Taxi, Carpool}
}

// Known reports whether id is one of the fixed transport modes.
func (id TransportID) Known() bool {
	for _, k := range KnownTransportIDs() {
		if k == id {
			return true
		}
	}
	return false
}

type TransportOption struct {
	ID          TransportID `toml:"id"`
	Name        string      `toml:"name"`
	Icon        string      `toml:"icon"`
	Color       string      `toml:"color"`
	Description string      `toml:"description"`
}

type SubscriptionPlan struct {
	Name   string  `toml:"name"`
	Price  float64 `toml:"price"`
	Period string  `toml:"period"`
	VIP    bool    `toml:"vip"`
}

type Trip struct {
	ID    int         `toml:"id"`
	From  string      `toml:"from"`
	To    string      `toml:"to"`
	Kind  TransportID `toml:"kind"`
	Time  string      `toml:"time"`
	Price float64     `toml:"price"`
}

type Profile struct {
	Initials           string   `toml:"initials"`
	Name               string   `toml:"name"`
	Phone              string   `toml:"phone"`
	SubscriptionTitle  string   `toml:"subscription_title"`
	SubscriptionDetail string   `toml:"subscription_detail"`
	SubscriptionStatus string   `toml:"subscription_status"`
	Menu               []string `toml:"menu"`
}

// Catalog is the decoded reference data. Accessors hand out copies.
type Catalog struct {
	transports []TransportOption
	plans      []SubscriptionPlan
	trips      []Trip
	profile    Profile
}

type catalogFile struct {
	Transport []TransportOption  `toml:"transport"`
	Plan      []SubscriptionPlan `toml:"plan"`
	Trip      []Trip             `toml:"trip"`
	Profile   Profile            `toml:"profile"`
}

//go:embed catalog.toml
var embeddedTOML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedTOML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes and validates a catalog TOML document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Transport) == 0 {
		return nil, fmt.Errorf("no transport options defined")
	}
	seen := make(map[TransportID]bool, len(f.Transport))
	for i, t := range f.Transport {
		if !t.ID.Known() {
			return nil, fmt.Errorf("transport[%d]: unknown id %q", i, t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("transport[%d]: duplicate id %q", i, t.ID)
		}
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("transport[%d]: name is required", i)
		}
		seen[t.ID] = true
	}
	for i, p := range f.Plan {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("plan[%d]: name is required", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("plan[%d]: negative price", i)
		}
	}
	for i, t := range f.Trip {
		if !seen[t.Kind] {
			return nil, fmt.Errorf("trip[%d]: unknown transport kind %q", i, t.Kind)
		}
	}
	return &Catalog{
		transports: f.Transport,
		plans:      f.Plan,
		trips:      f.Trip,
		profile:    f.Profile,
	}, nil
}

func (c *Catalog) Transports() []TransportOption {
	return append([]TransportOption(nil), c.transports...)
}

func (c *Catalog) Plans() []SubscriptionPlan {
	return append([]SubscriptionPlan(nil), c.plans...)
}

func (c *Catalog) Trips() []Trip {
	return append([]Trip(nil), c.trips...)
}

func (c *Catalog) Profile() Profile {
	p := c.profile
	p.Menu = append([]string(nil), c.profile.Menu...)
	return p
}

// LookupTransport finds the option with the given id.
func (c *Catalog) LookupTransport(id TransportID) (TransportOption, bool) {
	for _, t := range c.transports {
		if t.ID == id {
			return t, true
		}
	}
	return TransportOption{}, false
}

// FormatPrice renders a price in its shortest decimal form followed by the
// currency suffix, e.g. "1.5 сом.".
func FormatPrice(price float64, currency string) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	if currency == "" {
		return s
	}
	return s + " " + currency
}
