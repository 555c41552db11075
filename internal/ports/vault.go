package ports

type Vault interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(envelope string) (string, error)
}
