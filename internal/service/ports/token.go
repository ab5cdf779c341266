package ports

type TokenSource interface {
	Generate() (string, error)
}
