package smoke

import "fmt"

// verifyRankResponse checks the ranking invariants on one response:
// success envelope, balance scores sorted descending, output ranks dense
// from 1, and every invalid entry carrying an error tag with no rank.
func verifyRankResponse(resp *RankResponse) error {
	if resp.Status != "success" {
		return fmt.Errorf("unexpected status %q", resp.Status)
	}

	wantRank := 1
	var prevScore float64
	havePrev := false

	for i, entry := range resp.Evaluated {
		if entry.BalanceScore == nil {
			if entry.Error == "" {
				return fmt.Errorf("entry %d (%s) has neither score nor error", i, entry.Part)
			}
			if entry.OutputRank != 0 {
				return fmt.Errorf("invalid entry %d (%s) has output rank %d", i, entry.Part, entry.OutputRank)
			}
			continue
		}

		if havePrev && *entry.BalanceScore > prevScore {
			return fmt.Errorf("balance scores not descending at entry %d (%s)", i, entry.Part)
		}
		prevScore = *entry.BalanceScore
		havePrev = true

		if entry.OutputRank != wantRank {
			return fmt.Errorf("entry %d (%s): output rank %d, want %d", i, entry.Part, entry.OutputRank, wantRank)
		}
		wantRank++
	}

	if resp.ValidCount != wantRank-1 {
		return fmt.Errorf("valid_count %d does not match %d scored entries", resp.ValidCount, wantRank-1)
	}
	return nil
}

// verifySelectResponse checks the selected price sits inside the window.
func verifySelectResponse(resp *SelectResponse, minPrice, maxPrice float64) error {
	if resp.Status != "success" {
		return fmt.Errorf("unexpected status %q", resp.Status)
	}
	if resp.Part == "" {
		return fmt.Errorf("selection has no part")
	}
	if resp.Price < minPrice || resp.Price > maxPrice {
		return fmt.Errorf("selected price %.2f outside window [%.2f, %.2f]", resp.Price, minPrice, maxPrice)
	}
	return nil
}
