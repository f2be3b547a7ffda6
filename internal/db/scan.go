package db

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var run Run
	if err := row.Scan(
		&run.ID,
		&run.Root,
		&run.CreatedAt,
		&run.Variant,
		&run.TotalLines,
		&run.TotalFiles,
		&run.Category,
	); err != nil {
		return nil, err
	}
	return &run, nil
}
