package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const (
	sqliteInitTable = `CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role INTEGER NOT NULL,
  created_at TEXT NOT NULL
);`

	// HashCost is the bcrypt cost used for stored passwords.
	HashCost = 10
)

// ErrNotFound is returned when no user matches a lookup.
var ErrNotFound = errors.New("user not found")

// ErrEmailTaken is returned when creating a user whose email already exists.
var ErrEmailTaken = errors.New("email already registered")

// Role is a numeric account role.
type Role int

const (
	RoleUser  Role = 1
	RoleAdmin Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleAdmin:
		return "admin"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// User is a stored account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Store persists users in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the user database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("users dsn is required")
	}
	path, err := ensureDBPath(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteInitTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create users table: %w", err)
	}

	// The file holds password hashes; keep it private to the owner.
	if path != "" && runtime.GOOS != "windows" {
		if err := os.Chmod(path, 0o600); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("restrict users db permissions: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// FindByEmail returns the user with the given email (case-insensitive).
func (s *Store) FindByEmail(ctx context.Context, email string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = ?",
		normalizeEmail(email))

	var u User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return User{}, fmt.Errorf("parse created_at for %s: %w", u.Email, err)
	}
	u.CreatedAt = parsed
	return u, nil
}

// Create hashes password and inserts a new user.
func (s *Store) Create(ctx context.Context, name, email, password string, role Role) (User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	switch {
	case name == "":
		return User{}, errors.New("name is required")
	case email == "" || !strings.Contains(email, "@"):
		return User{}, fmt.Errorf("invalid email %q", email)
	case password == "":
		return User{}, errors.New("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	u := User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?)",
		u.Name, u.Email, u.PasswordHash, int(u.Role), u.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	if u.ID, err = res.LastInsertId(); err != nil {
		return User{}, fmt.Errorf("read user id: %w", err)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ensureDBPath creates the parent directory of a file DSN and returns the
// file path, or "" for in-memory databases.
func ensureDBPath(dsn string) (string, error) {
	path := strings.TrimSpace(dsn)
	if strings.HasPrefix(path, "file:") {
		path = strings.TrimPrefix(path, "file:")
		path = strings.TrimPrefix(path, "//")
	}
	if idx := strings.IndexAny(path, "?;"); idx >= 0 {
		path = path[:idx]
	}
	if path == "" || path == ":memory:" {
		return "", nil
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create users db dir: %w", err)
		}
	}
	return path, nil
}
