// ABOUTME: SQLite database schema for concierge storage
// ABOUTME: Base tables for guests, conversation log, and both booking kinds
package sqlite

// Schema contains the base SQL statements for database initialization.
// Columns added after the base schema live in migrations (see migrate.go)
// so a store created by an older release is adopted without data loss.
const Schema = `
-- Guests table, keyed by the stable identity the voice platform assigns
CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    name TEXT,
    phone TEXT,
    email TEXT,
    preferences TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    last_interaction DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Append-only conversation log. No FK on user_id: a turn may be
-- logged before the guest row exists.
CREATE TABLE IF NOT EXISTS conversations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT,
    message TEXT,
    speaker TEXT,
    timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Room bookings
CREATE TABLE IF NOT EXISTS room_bookings (
    booking_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT REFERENCES users(user_id),
    room_type TEXT,
    check_in_date DATE,
    check_out_date DATE,
    num_adults INTEGER,
    num_children INTEGER DEFAULT 0,
    special_requests TEXT,
    status TEXT DEFAULT 'confirmed',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Restaurant bookings
CREATE TABLE IF NOT EXISTS restaurant_bookings (
    booking_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT REFERENCES users(user_id),
    restaurant_name TEXT,
    booking_date DATE,
    booking_time TEXT,
    num_guests INTEGER,
    special_requests TEXT,
    status TEXT DEFAULT 'confirmed',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id, timestamp);
CREATE INDEX IF NOT EXISTS idx_room_bookings_user ON room_bookings(user_id);
CREATE INDEX IF NOT EXISTS idx_restaurant_bookings_user ON restaurant_bookings(user_id);
`

// BaseSchemaVersion is the version the base schema corresponds to.
// Migrations with a higher version are applied on top of it.
const BaseSchemaVersion = 1
