package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/scheduling/internal/entity"
)

type CodesReport struct {
	AreasUpdated  int `json:"areasUpdated"`
	DutiesUpdated int `json:"dutiesUpdated"`
}

// ReassignCodes recomputes area and duty codes and persists only the ones that changed.
// Running it twice in a row updates nothing the second time.
func (s *Service) ReassignCodes(ctx context.Context) (CodesReport, error) {
	areas, err := s.repo.Areas(ctx)
	if err != nil {
		return CodesReport{}, fmt.Errorf("list areas: %w", err)
	}

	duties, err := s.repo.Duties(ctx)
	if err != nil {
		return CodesReport{}, fmt.Errorf("list duties: %w", err)
	}

	areaUpdates := AreaCodeUpdates(areas)
	dutyUpdates := DutyCodeUpdates(areas, duties)

	if len(areaUpdates) > 0 {
		err = s.repo.UpdateAreaCodes(ctx, areaUpdates)
		if err != nil {
			return CodesReport{}, fmt.Errorf("update area codes: %w", err)
		}
	}

	if len(dutyUpdates) > 0 {
		err = s.repo.UpdateDutyCodes(ctx, dutyUpdates)
		if err != nil {
			return CodesReport{AreasUpdated: len(areaUpdates)}, fmt.Errorf("update duty codes: %w", err)
		}
	}

	report := CodesReport{AreasUpdated: len(areaUpdates), DutiesUpdated: len(dutyUpdates)}

	slog.InfoContext(ctx, "codes reassigned", "areas_updated", report.AreasUpdated, "duties_updated", report.DutiesUpdated)

	return report, nil
}

// AreaCodeUpdates numbers areas by case-insensitive name, ties broken by id.
func AreaCodeUpdates(areas []entity.Area) []entity.CodeUpdate {
	sorted := slices.Clone(areas)
	slices.SortFunc(sorted, func(a, b entity.Area) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			compareIDs(a.ID, b.ID),
		)
	})

	var updates []entity.CodeUpdate

	for i, a := range sorted {
		code := entity.AreaCode(i + 1)
		if a.Code != code {
			updates = append(updates, entity.CodeUpdate{ID: a.ID, Code: code})
		}
	}

	return updates
}

// DutyCodeUpdates numbers duties within their area by creation time, ties broken by id.
// Duties of unknown areas are left alone.
func DutyCodeUpdates(areas []entity.Area, duties []entity.Duty) []entity.CodeUpdate {
	areaNames := make(map[uuid.UUID]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Name
	}

	byArea := make(map[uuid.UUID][]entity.Duty)
	for _, d := range duties {
		if _, ok := areaNames[d.AreaID]; ok {
			byArea[d.AreaID] = append(byArea[d.AreaID], d)
		}
	}

	var updates []entity.CodeUpdate

	for _, a := range areas {
		list := byArea[a.ID]
		slices.SortFunc(list, func(x, y entity.Duty) int {
			return cmp.Or(x.CreatedAt.Compare(y.CreatedAt), compareIDs(x.ID, y.ID))
		})

		for i, d := range list {
			code := entity.DutyCode(a.Name, i+1)
			if d.Code != code {
				updates = append(updates, entity.CodeUpdate{ID: d.ID, Code: code})
			}
		}
	}

	return updates
}

func compareIDs(a, b uuid.UUID) int {
	return strings.Compare(a.String(), b.String())
}
