package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/investment_admin_core/internal/core/domain"
)

// Seed is the document accepted by LoadSeed.
type Seed struct {
	Investments  []domain.Investment  `json:"investments"`
	Wallets      []domain.Wallet      `json:"wallets"`
	Projects     []domain.Project     `json:"projects"`
	Transactions []domain.Transaction `json:"transactions"`
}

// LoadSeedFile reads a JSON seed from path into s.
func (s *Store) LoadSeedFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer f.Close()
	return s.LoadSeed(f)
}

// LoadSeed decodes a JSON seed from r and stores every document in it. It returns
// the number of documents loaded.
func (s *Store) LoadSeed(r io.Reader) (int, error) {
	var seed Seed
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&seed); err != nil {
		return 0, fmt.Errorf("failed to decode seed: %w", err)
	}

	for _, inv := range seed.Investments {
		if inv.InvestmentID == "" {
			return 0, fmt.Errorf("seed investment without investmentID")
		}
		if inv.Status == "" {
			inv.Status = domain.InvestmentPending
		}
		s.PutInvestment(inv)
	}
	for _, w := range seed.Wallets {
		if w.UserID == "" {
			return 0, fmt.Errorf("seed wallet without userID")
		}
		s.PutWallet(w)
	}
	for _, p := range seed.Projects {
		if p.ProjectID == "" {
			return 0, fmt.Errorf("seed project without projectID")
		}
		// A missing invested total means nothing has been invested yet.
		if !p.TotalInvested.Valid {
			p.TotalInvested = decimal.NewNullDecimal(decimal.Zero)
		}
		s.PutProject(p)
	}
	for _, txn := range seed.Transactions {
		s.PutTransaction(txn)
	}
	return len(seed.Investments) + len(seed.Wallets) + len(seed.Projects) + len(seed.Transactions), nil
}
