// Package mock produces every value the app displays. Nothing here is
// measured or computed from real input: fixed values reproduce the demo
// script exactly, and the randomized mode only varies them for show.
package mock

import (
	"encoding/hex"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// AuthHash is the demo authentication hash shown after a capture.
const AuthHash = "a7f2c9e1d4f8b3e6c2f9a1d4b7e0c3f6a9d2b5e8c1f4a7d0b3e6c9f2a5d8b1e4"

// Verdict is the mock outcome of a capture.
type Verdict struct {
	Confidence int // percent
	Risk       string
	Hash       string
}

// Account summarizes the primary checking account.
type Account struct {
	BalanceCents    int64
	Number          string
	Routing         string
	CreditLimit     int64
	CreditUsedCents int64
	MonthChange     float64 // percent
}

// TxType distinguishes money in from money out.
type TxType string

const (
	Debit  TxType = "debit"
	Credit TxType = "credit"
)

// Transaction is one row of recent activity. AmountCents is always positive;
// Type carries the sign.
type Transaction struct {
	ID          string
	Type        TxType
	AmountCents int64
	Merchant    string
	Category    string
	At          time.Time
}

// Card is one account tile on the accounts tab.
type Card struct {
	Kind         string
	Number       string
	BalanceCents int64
	LimitCents   int64
	Primary      bool
}

// Recipient is a recent transfer target.
type Recipient struct {
	Name        string
	Email       string
	AmountCents int64
}

// HashRecord is one past authentication.
type HashRecord struct {
	Hash   string
	At     time.Time
	Status string
}

// Stats are the security dashboard counters.
type Stats struct {
	Today   int
	Total   int
	Uptime  time.Duration
	Devices []string
}

// SensorReading is one fabricated accelerometer sample.
type SensorReading struct {
	X, Y, Z float64
}

// Generator hands out display values. With Randomize unset every method
// returns the demo script values, except Sensor which always varies.
type Generator struct {
	rnd       *rand.Rand
	randomize bool
}

// New creates a Generator. A zero seed seeds from the clock.
func New(randomize bool, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd:       rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1)),
		randomize: randomize,
	}
}

// Hash returns a 64 character lowercase hex string.
func (g *Generator) Hash() string {
	if !g.randomize {
		return AuthHash
	}
	return g.hex(32)
}

func (g *Generator) hex(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(g.rnd.UintN(256))
	}
	return hex.EncodeToString(b)
}

// Verdict returns the capture outcome.
func (g *Generator) Verdict() Verdict {
	v := Verdict{Confidence: 96, Risk: "Low", Hash: g.Hash()}
	if g.randomize {
		v.Confidence = 90 + g.rnd.IntN(10)
	}
	return v
}

// Account returns the primary account summary.
func (g *Generator) Account() Account {
	a := Account{
		BalanceCents:    2456789,
		Number:          "****7892",
		Routing:         "021000021",
		CreditLimit:     1500000,
		CreditUsedCents: 234000,
		MonthChange:     2.4,
	}
	if g.randomize {
		a.BalanceCents = 500000 + g.rnd.Int64N(5000000)
		a.MonthChange = float64(g.rnd.IntN(80)-20) / 10
	}
	return a
}

// Transactions returns recent activity, newest first.
func (g *Generator) Transactions(now time.Time) []Transaction {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	txs := []Transaction{
		{Type: Debit, AmountCents: 8950, Merchant: "Whole Foods Market", Category: "Groceries", At: day.Add(14*time.Hour + 34*time.Minute)},
		{Type: Credit, AmountCents: 250000, Merchant: "Salary Deposit", Category: "Income", At: day.Add(9 * time.Hour)},
		{Type: Debit, AmountCents: 4500, Merchant: "Shell Gas Station", Category: "Transportation", At: day.AddDate(0, 0, -1).Add(18*time.Hour + 45*time.Minute)},
		{Type: Debit, AmountCents: 120000, Merchant: "Rent Payment", Category: "Housing", At: day.AddDate(0, 0, -9)},
		{Type: Debit, AmountCents: 6789, Merchant: "Amazon Purchase", Category: "Shopping", At: day.AddDate(0, 0, -11)},
	}
	for i := range txs {
		txs[i].ID = uuid.NewString()
		if g.randomize && txs[i].Type == Debit {
			txs[i].AmountCents = int64(g.rnd.IntN(20000) + 500)
		}
	}
	return txs
}

// Cards returns the three account tiles.
func (g *Generator) Cards(acct Account) []Card {
	return []Card{
		{Kind: "Checking", Number: acct.Number, BalanceCents: acct.BalanceCents, Primary: true},
		{Kind: "Savings", Number: "****3456", BalanceCents: 4523012},
		{Kind: "Credit", Number: "****9876", BalanceCents: -acct.CreditUsedCents, LimitCents: acct.CreditLimit},
	}
}

// Recipients returns recent transfer targets.
func (g *Generator) Recipients() []Recipient {
	return []Recipient{
		{Name: "Sarah Johnson", Email: "sarah.j@email.com", AmountCents: 25000},
		{Name: "Mike Chen", Email: "mike.chen@email.com", AmountCents: 8950},
		{Name: "Emma Wilson", Email: "emma.w@email.com", AmountCents: 12500},
	}
}

// Stats returns the security dashboard counters.
func (g *Generator) Stats() Stats {
	s := Stats{
		Today:   23,
		Total:   1247,
		Uptime:  2*time.Hour + 14*time.Minute,
		Devices: []string{"iPhone 15 Pro", "MacBook Pro", "iPad Air"},
	}
	if g.randomize {
		s.Today = 5 + g.rnd.IntN(40)
		s.Total = 1000 + g.rnd.IntN(500)
	}
	return s
}

var recentHashes = []struct {
	hash string
	ago  time.Duration
}{
	{"a7f2c9e1d4f8b3e6c2f9a1d4b7e0c3f6a9d2b5e8c1f4a7d0b3e6c9f24b7e0c3f", 2 * time.Minute},
	{"b9c3f6a2d5e8b1c4f7a0d3e6b9c2f5a800d1e4b7c0f3a6d9e2b5c8f15e8c1f4a", 15 * time.Minute},
	{"c1d4e7f0a3b6c9d2e5f8a1b4c7d0e3f600a9b2c5d8e1f4a7b0c3d6e96c9f2a5d", time.Hour},
	{"d2e5f8a1b4c7d0e3f6a9b2c5d8e1f4a70000b0c3d6e9f2a5b8c1d4e77d0b3e6c", 2 * time.Hour},
	{"e3f6a9d2b5e8c1f4a7d0b3e6c9f2a5d8000000b1e4c7f0a3d6b9e2c58e1c4f7a", 3 * time.Hour},
}

// RecentHashes returns past authentications, newest first.
func (g *Generator) RecentHashes(now time.Time) []HashRecord {
	out := make([]HashRecord, len(recentHashes))
	for i, r := range recentHashes {
		h := r.hash
		if g.randomize {
			h = g.hex(32)
		}
		out[i] = HashRecord{Hash: h, At: now.Add(-r.ago), Status: "verified"}
	}
	return out
}

// Sensor returns a fresh accelerometer sample in m/s², roughly a walking gait.
func (g *Generator) Sensor() SensorReading {
	return SensorReading{
		X: g.rnd.Float64()*4 - 2,
		Y: g.rnd.Float64()*4 - 2,
		Z: 9.81 + g.rnd.Float64()*2 - 1,
	}
}

// ShortHash abbreviates h as first8...last8.
func ShortHash(h string) string {
	if len(h) <= 19 {
		return h
	}
	return h[:8] + "..." + h[len(h)-8:]
}
