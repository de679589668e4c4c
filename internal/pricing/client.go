// Package pricing provides electricity tariff lookups for US states from an
// embedded tariff table.
package pricing

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// DefaultElectricityCentsPerKWh is used when a state has no tariff entry.
const DefaultElectricityCentsPerKWh = 10.0

// expectedUnit is the only unit the tariff file may declare.
const expectedUnit = "cents/kWh"

//go:embed data/state_tariffs.json
var rawTariffJSON []byte

// TariffClient provides electricity tariff lookups.
type TariffClient interface {
	// Currency returns the currency code of the tariffs (always "USD" for v1)
	Currency() string

	// States returns the state codes in presentation order
	States() []string

	// ElectricityCentsPerKWh returns the tariff for a state code.
	// Returns (cents, true) if found, (0, false) if not found
	ElectricityCentsPerKWh(state string) (float64, bool)

	// StateName returns the full state name for a state code.
	StateName(state string) (string, bool)
}

// Client implements TariffClient with embedded JSON data
type Client struct {
	raw    []byte
	logger zerolog.Logger

	// Thread-safe initialization
	once sync.Once
	err  error

	currency string
	order    []string
	index    map[string]tariff
}

// NewClient creates a Client backed by the embedded tariff table.
// The logger receives warnings about rows skipped while indexing.
// It returns a non-nil error if the embedded table cannot be parsed.
func NewClient(logger zerolog.Logger) (*Client, error) {
	return NewClientFromJSON(rawTariffJSON, logger)
}

// NewClientFromJSON creates a Client from an explicit tariff document with
// the same layout as the embedded table.
func NewClientFromJSON(data []byte, logger zerolog.Logger) (*Client, error) {
	c := &Client{
		raw:    data,
		logger: logger,
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init parses the tariff data exactly once
func (c *Client) init() error {
	c.once.Do(func() {
		var table tariffTable
		if err := json.Unmarshal(c.raw, &table); err != nil {
			c.err = fmt.Errorf("failed to parse tariff data: %w", err)
			return
		}
		if table.Unit != "" && table.Unit != expectedUnit {
			c.err = fmt.Errorf("unsupported tariff unit %q, want %q", table.Unit, expectedUnit)
			return
		}

		c.currency = table.Currency
		if c.currency == "" {
			c.currency = "USD"
		}

		c.index = make(map[string]tariff, len(table.Tariffs))
		c.order = make([]string, 0, len(table.Tariffs))

		for i, entry := range table.Tariffs {
			code := normalizeState(entry.State)
			if code == "" {
				c.logger.Warn().Int("row", i).Msg("tariff row without state code, skipping")
				continue
			}
			if entry.CentsPerKWh <= 0 {
				c.logger.Warn().
					Str("state", code).
					Float64("cents_per_kwh", entry.CentsPerKWh).
					Msg("non-positive tariff, skipping")
				continue
			}
			if _, exists := c.index[code]; exists {
				c.logger.Warn().Str("state", code).Msg("duplicate tariff row, keeping first")
				continue
			}

			c.index[code] = tariff{
				Name:        entry.Name,
				CentsPerKWh: entry.CentsPerKWh,
			}
			c.order = append(c.order, code)
		}

		if len(c.index) == 0 {
			c.err = fmt.Errorf("tariff data contains no usable rows")
			return
		}

		c.logger.Debug().
			Int("states", len(c.index)).
			Str("currency", c.currency).
			Msg("tariff table loaded")
	})
	return c.err
}

// Currency returns the currency code
func (c *Client) Currency() string {
	_ = c.init()
	return c.currency
}

// States returns a copy of the state codes in table order.
func (c *Client) States() []string {
	_ = c.init()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// ElectricityCentsPerKWh returns the tariff for a state code, matched
// case-insensitively.
func (c *Client) ElectricityCentsPerKWh(state string) (float64, bool) {
	if err := c.init(); err != nil {
		return 0, false
	}
	t, ok := c.index[normalizeState(state)]
	if !ok {
		return 0, false
	}
	return t.CentsPerKWh, true
}

// StateName returns the full state name for a state code.
func (c *Client) StateName(state string) (string, bool) {
	if err := c.init(); err != nil {
		return "", false
	}
	t, ok := c.index[normalizeState(state)]
	if !ok {
		return "", false
	}
	return t.Name, true
}

// CentsOrDefault returns the tariff for state from client, or
// DefaultElectricityCentsPerKWh when the state is unknown.
func CentsOrDefault(client TariffClient, state string) float64 {
	if cents, ok := client.ElectricityCentsPerKWh(state); ok {
		return cents
	}
	return DefaultElectricityCentsPerKWh
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}
