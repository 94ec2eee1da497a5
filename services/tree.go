package services

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/andrewpaige1/panelverse-api/models"
)

// treeQuery walks panel_set -> panel -> hook -> panel_set edges from the root.
// Timestamps are joined after the recursion so drivers see declared column types.
const treeQuery = `
WITH RECURSIVE tree (panel_set_id, parent_panel_set_id, level, path) AS (
	SELECT ps.id, CAST(NULL AS BIGINT), 0, CAST(ps.id AS TEXT)
	FROM panel_sets ps
	WHERE ps.id = ?
	UNION ALL
	SELECT h.next_panel_set_id, t.panel_set_id, t.level + 1, t.path || '->' || CAST(h.next_panel_set_id AS TEXT)
	FROM tree t
	JOIN panels p ON p.panel_set_id = t.panel_set_id
	JOIN hooks h ON h.current_panel_id = p.id
	WHERE h.next_panel_set_id IS NOT NULL AND t.level < ?
)
SELECT t.panel_set_id, t.parent_panel_set_id, ps.author_id, ps.created_at, ps.updated_at, t.level, t.path
FROM tree t
JOIN panel_sets ps ON ps.id = t.panel_set_id
ORDER BY t.path`

// Tree returns every panel set reachable from rootID, parents before children
// and siblings by ascending id. A missing root is ErrNotFound; a leaf yields one row.
func (s *Service) Tree(ctx context.Context, rootID uint) ([]models.TreeNode, error) {
	return s.tree(s.DB.WithContext(ctx), rootID)
}

func (s *Service) tree(tx *gorm.DB, rootID uint) ([]models.TreeNode, error) {
	if err := ensureExists[models.PanelSet](tx, "panel set", rootID); err != nil {
		return nil, err
	}

	maxDepth := s.MaxTreeDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxTreeDepth
	}

	var rows []models.TreeNode
	if err := tx.Raw(treeQuery, rootID, maxDepth).Scan(&rows).Error; err != nil {
		return nil, storeError("walk panel set tree", err)
	}
	if len(rows) == 0 {
		return nil, notFoundError("panel set %d does not exist", rootID)
	}

	return orderTree(rootID, rows, maxDepth)
}

// orderTree re-checks that rows form a tree rooted at rootID and returns them depth first.
// The unique hook link normally guarantees this; a duplicate means the graph was corrupted.
func orderTree(rootID uint, rows []models.TreeNode, maxDepth int) ([]models.TreeNode, error) {
	byID := make(map[uint]models.TreeNode, len(rows))
	children := make(map[uint][]uint)
	for _, row := range rows {
		if _, dup := byID[row.PanelSetID]; dup {
			return nil, fmt.Errorf("%w: panel set %d is reachable twice from panel set %d, hook links do not form a tree", ErrInternal, row.PanelSetID, rootID)
		}
		if row.Level >= maxDepth {
			return nil, fmt.Errorf("%w: tree under panel set %d is deeper than %d", ErrInternal, rootID, maxDepth)
		}
		byID[row.PanelSetID] = row
		if row.ParentPanelSetID != nil {
			children[*row.ParentPanelSetID] = append(children[*row.ParentPanelSetID], row.PanelSetID)
		}
	}

	ordered := make([]models.TreeNode, 0, len(rows))
	var visit func(id uint)
	visit = func(id uint) {
		ordered = append(ordered, byID[id])
		kids := children[id]
		sort.Slice(kids, func(i, j int) bool { return kids[i] < kids[j] })
		for _, kid := range kids {
			visit(kid)
		}
	}
	visit(rootID)
	return ordered, nil
}
