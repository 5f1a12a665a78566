package database

var (
	MigrationsLockKey     = migrationsLockKey
	ReleaseMigrationsLock = releaseMigrationsLock
	ErrLockNotHeld        = errLockNotHeld
)
