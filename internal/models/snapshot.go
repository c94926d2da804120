package models

// SessionSnapshot is the durable form of the session store's state.
// Loading and error flags are transient and never persisted.
type SessionSnapshot struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// HistorySnapshot is the durable form of the scan history store's state:
// the full record collection, newest first.
type HistorySnapshot struct {
	Scans []ScanRecord `json:"scans"`
}
