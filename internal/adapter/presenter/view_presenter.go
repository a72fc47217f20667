package presenter

import (
	viewDTO "github.com/johnquangdev/project-hub/internal/adapter/dto/view"
	"github.com/johnquangdev/project-hub/internal/usecase/view"
)

// ToViewResponse converts a view session snapshot. Table rows use rowDate
// and the preview header uses previewDate.
func ToViewResponse(s *view.Snapshot, rowDate, previewDate DateFormatter) *viewDTO.ViewResponse {
	if s == nil {
		return nil
	}

	response := &viewDTO.ViewResponse{
		ID:        s.ID,
		Kind:      string(s.Kind),
		ProjectID: s.ProjectID,
	}

	if s.Table != nil {
		selected := []string(s.Table.State.Selected)
		if selected == nil {
			selected = []string{}
		}
		response.Table = &viewDTO.TableViewResponse{
			Query:       s.Table.State.Query,
			Selected:    selected,
			AllSelected: s.Table.AllSelected,
			Notes:       ToNoteRowResponses(s.Table.Notes, rowDate),
			Total:       len(s.Table.Notes),
		}
	}

	if s.Preview != nil {
		response.Preview = &viewDTO.PreviewViewResponse{
			State: s.Preview.State,
			Note:  ToNotePreviewResponse(s.Preview.View, previewDate),
		}
	}

	return response
}
