// Package scourt provides structured access to the Supreme Court of Korea's
// bankruptcy asset-sale notice portal. It converts the portal's HTML pages
// into summary and detail records, classifies notices by asset type, and
// extracts bid economics from free-form announcement text.
//
// This package contains domain types, interfaces, and pure extraction logic
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/, http/).
package scourt
