// seed gera um script SQL para criar o usuário administrador inicial.
//
// Uso: go run ./cmd/seed <email> <senha>
// Escreve: internal/infrastructure/postgres/migrations/002_seed_admin.sql
//
// A senha entra no script já hasheada com bcrypt; o script é idempotente.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed <email> <senha>")
		os.Exit(1)
	}
	email := strings.TrimSpace(os.Args[1])
	password := os.Args[2]

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash da senha: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_admin.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "criar arquivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Usuário administrador inicial\n")
	out.WriteString("-- Gerado por cmd/seed\n\n")
	fmt.Fprintf(out, `INSERT INTO users (id, email, password_hash, name, role, status)
SELECT '%s', '%s', '%s', 'Administrador', 'admin', 'active'
WHERE NOT EXISTS (
    SELECT 1 FROM users WHERE email = '%s' AND deleted_at IS NULL
);
`, uuid.New().String(), escapeSQL(email), escapeSQL(string(hash)), escapeSQL(email))

	fmt.Printf("Gerado %s para %s\n", outPath, email)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
