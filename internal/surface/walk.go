package surface

// Walk calls fn for t and every term nested inside it, parents first.
// Returning false from fn skips the children of that term.
func Walk(t Term, fn func(Term) bool) {
	if t == nil || !fn(t) {
		return
	}
	switch t := t.(type) {
	case *Ann:
		Walk(t.Term, fn)
		Walk(t.Type, fn)
	case *If:
		Walk(t.Cond, fn)
		Walk(t.Then, fn)
		Walk(t.Else, fn)
	case *Paren:
		Walk(t.Inner, fn)
	case *StructType:
		for i := range t.Fields {
			Walk(t.Fields[i].Term, fn)
		}
	}
}

// WalkModule visits every term of every item in source order.
func WalkModule(m *Module, fn func(Term) bool) {
	for _, it := range m.Items {
		switch it := it.(type) {
		case *Alias:
			Walk(it.Type, fn)
			Walk(it.Term, fn)
		case *Struct:
			for i := range it.Fields {
				Walk(it.Fields[i].Term, fn)
			}
		}
	}
}
