package store

const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS albums (
	id TEXT PRIMARY KEY,
	external_id TEXT UNIQUE NOT NULL,
	title TEXT NOT NULL,
	artist TEXT NOT NULL,
	cover_url TEXT
);

CREATE INDEX IF NOT EXISTS idx_albums_external_id ON albums(external_id);

CREATE TABLE IF NOT EXISTS user_albums (
	user_id TEXT NOT NULL,
	album_id TEXT NOT NULL,
	notes TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,

	PRIMARY KEY (user_id, album_id),
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (album_id) REFERENCES albums(id)
);

CREATE INDEX IF NOT EXISTS idx_user_albums_user_id ON user_albums(user_id);

CREATE TABLE IF NOT EXISTS track_ratings (
	user_id TEXT NOT NULL,
	album_id TEXT NOT NULL,
	track_id TEXT NOT NULL,
	track_name TEXT NOT NULL,
	rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,

	PRIMARY KEY (user_id, album_id, track_id),
	FOREIGN KEY (user_id) REFERENCES users(id),
	FOREIGN KEY (album_id) REFERENCES albums(id)
);

CREATE INDEX IF NOT EXISTS idx_track_ratings_user_album ON track_ratings(user_id, album_id);

CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	username TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	expires_at DATETIME NOT NULL,

	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
`
