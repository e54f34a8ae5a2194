package ports

type Grammar interface {
	// Expand flattens a raw template such as "#origin#".
	Expand(rule string) string
}

type GrammarLoader interface {
	Load(path string) (Grammar, error)
}
