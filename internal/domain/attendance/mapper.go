package attendance

// FromWire maps one upstream attendance record to its view model. Date,
// status and remarks pass through untouched; only identifiers are renamed.
func FromWire(w RecordWire) Record {
	return Record{
		ID:           w.ID,
		EmployeeID:   w.EmployeeID,
		EmployeeName: w.EmployeeName,
		Date:         w.Date,
		Status:       w.Status,
		Remarks:      w.Remarks,
	}
}

// FromWireList maps a full response, preserving order.
func FromWireList(wires []RecordWire) []Record {
	records := make([]Record, 0, len(wires))
	for _, w := range wires {
		records = append(records, FromWire(w))
	}
	return records
}
