package importstmt

// DedupeStatements removes statements whose NormalizedKey (same path,
// default import, sorted named imports, declaration keyword and import
// function) has already been seen, keeping the first occurrence of each.
func DedupeStatements(stmts []*Statement) []*Statement {
	seen := make(map[string]bool, len(stmts))
	out := make([]*Statement, 0, len(stmts))
	for _, s := range stmts {
		key := s.NormalizedKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}
