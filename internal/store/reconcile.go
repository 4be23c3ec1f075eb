package store

import "budgetzen/internal/core"

// reconcileCategories merges persisted category data with the current
// built-in default set. It runs at startup load and after import, so a
// release that adds new built-ins never erases a user's customized
// entries and category identity is never duplicated.
//
// Precedence rules:
//   - the fresh built-in set is the base;
//   - a stored non-user-defined entry whose name matches a current
//     built-in overwrites that built-in, preserving the stored id (a
//     later duplicate overwrites again — last writer wins);
//   - stored non-user-defined entries with no current built-in
//     counterpart are dropped (the default was retired);
//   - stored user-defined entries append unless their name collides
//     with the set built so far; on a user-defined/built-in collision
//     the built-in wins, and among user-defined duplicates the first
//     occurrence wins.
//
// Name matching is case-insensitive, mirroring the registry's
// uniqueness invariant. The result is sorted by name. The algorithm is
// idempotent: reconciling its own output changes nothing.
func reconcileCategories(stored, defaults []core.AppCategory) []core.AppCategory {
	merged := append([]core.AppCategory(nil), defaults...)

	for _, sc := range stored {
		if sc.IsUserDefined {
			continue
		}
		for i := range merged {
			if core.SameName(merged[i].Name, sc.Name) {
				merged[i] = sc
				break
			}
		}
	}

	for _, sc := range stored {
		if !sc.IsUserDefined {
			continue
		}
		if containsName(merged, sc.Name) {
			continue
		}
		merged = append(merged, sc)
	}

	sortCategories(merged)
	return merged
}

func containsName(categories []core.AppCategory, name string) bool {
	for _, c := range categories {
		if core.SameName(c.Name, name) {
			return true
		}
	}
	return false
}
