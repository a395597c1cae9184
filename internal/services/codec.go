package services

// Encrypter is the symmetric codec used for encrypted fields and tokens.
type Encrypter interface {
	Encrypt(plaintext string) string
	Decrypt(ciphertext string) (string, error)
}
