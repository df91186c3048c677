// Package aggridtreedata generates synthetic hierarchical datasets for
// tree-data grids: every sibling group sums exactly to a fixed constraint,
// at every level, for every period.
//
// Layout:
//
//	treedata/      core generator: enumerate paths, sample, normalize, verify
//	config/        YAML config files (load, parse, save)
//	export/        uuid-stamped JSON/YAML dataset documents
//	logging/       slog logger construction
//	metrics/       Prometheus observer for generation events
//	server/        gin HTTP API (/api/v1/tree, /healthz, /metrics)
//	cmd/treedata/  CLI: generate, verify, init, serve
//
// Quick example (two regions, two channels each):
//
//	EMEA                plan[jan]=40
//	├── EMEA/Retail     plan[jan]=55
//	└── EMEA/Online     plan[jan]=45   (55+45 = 100)
//	APAC                plan[jan]=60   (40+60 = 100)
//	├── ...
//
//	go install github.com/chwzr/ag-grid-treedata/cmd/treedata@latest
package aggridtreedata
