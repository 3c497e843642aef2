package tester

import _ "embed"

var (
	//go:embed queries/insert_month.sql
	insertMonthSQL string
	//go:embed queries/insert_anchor.sql
	insertAnchorSQL string
)
