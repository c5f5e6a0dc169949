package server

// dashboardView is the template input for one render of the dashboard page.
type dashboardView struct {
	AIReady      bool
	AIModel      string
	AIReason     string
	LoadMessage  string
	LoadError    string
	HasData      bool
	Header       []string
	Rows         [][]string
	DataRowCount int
	ColumnCount  int
	Question     string
	Warning      string
	Answer       string
}

// buildView snapshots the session state into a render-ready view.
// Callers must hold h.mu.
func (h *Handler) buildView() dashboardView {
	status := h.analyzer.Status()
	view := dashboardView{
		AIReady:     status.Ready,
		AIModel:     status.Model,
		AIReason:    status.Reason,
		LoadMessage: h.state.loadMessage,
		LoadError:   h.state.loadError,
		Question:    h.state.question,
		Warning:     h.state.warning,
		Answer:      h.state.answer,
	}

	if len(h.state.sheetData) > 0 {
		header := h.state.sheetData[0]
		view.HasData = true
		view.Header = header
		view.Rows = padRows(h.state.sheetData[1:], len(header))
		view.DataRowCount = len(view.Rows)
		view.ColumnCount = len(header)
	}
	return view
}

// padRows normalizes every data row to the header width so the rendered
// table stays rectangular: short rows are padded with empty cells, long
// rows are truncated.
func padRows(rows [][]string, width int) [][]string {
	padded := make([][]string, 0, len(rows))
	for _, row := range rows {
		switch {
		case len(row) == width:
			padded = append(padded, row)
		case len(row) > width:
			padded = append(padded, row[:width])
		default:
			cells := make([]string, width)
			copy(cells, row)
			padded = append(padded, cells)
		}
	}
	return padded
}
