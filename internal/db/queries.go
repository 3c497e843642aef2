package db

import _ "embed"

var (
	//go:embed queries/select_months.sql
	selectMonthsSQL string
	//go:embed queries/insert_year.sql
	insertYearSQL string
	//go:embed queries/upsert_year.sql
	upsertYearSQL string
	//go:embed queries/delete_year.sql
	deleteYearSQL string
	//go:embed queries/clear_months.sql
	clearMonthsSQL string
	//go:embed queries/select_anchor.sql
	selectAnchorSQL string
	//go:embed queries/upsert_anchor.sql
	upsertAnchorSQL string
)
