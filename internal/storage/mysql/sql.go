package mysql

// Schema lives here rather than a migrations tool; the table set is small and
// the integration tests apply it directly.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS clubs (
  id           VARCHAR(64)  NOT NULL PRIMARY KEY,
  name         VARCHAR(255) NOT NULL,
  description  TEXT,
  tier         VARCHAR(16)  NOT NULL DEFAULT 'basic',
  city         VARCHAR(128),
  address      VARCHAR(255),
  lat          DOUBLE,
  lng          DOUBLE,
  features     JSON,
  services     JSON,
  stats        JSON,
  is_open      TINYINT(1)   NOT NULL DEFAULT 0,
  status_text  VARCHAR(128),
  verified     TINYINT(1)   NOT NULL DEFAULT 0,
  highlights   JSON,
  raw          JSON,
  updated_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
  KEY idx_clubs_city (city),
  KEY idx_clubs_tier (tier)
);

CREATE TABLE IF NOT EXISTS ingest_misses (
  id         BIGINT AUTO_INCREMENT PRIMARY KEY,
  club_id    VARCHAR(64) NOT NULL,
  status     INT NOT NULL,
  reason     VARCHAR(255),
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  KEY idx_misses_club (club_id)
);
`

const upsertClubSQL = `
INSERT INTO clubs
  (id, name, description, tier, city, address, lat, lng,
   features, services, stats, is_open, status_text, verified, highlights, raw)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  name=VALUES(name), description=VALUES(description), tier=VALUES(tier),
  city=VALUES(city), address=VALUES(address), lat=VALUES(lat), lng=VALUES(lng),
  features=VALUES(features), services=VALUES(services), stats=VALUES(stats),
  is_open=VALUES(is_open), status_text=VALUES(status_text),
  verified=VALUES(verified), highlights=VALUES(highlights), raw=VALUES(raw)`

const selectClubColumns = `
  id, name, description, tier, city, address, lat, lng,
  features, services, stats, is_open, status_text, verified, highlights`

const getClubSQL = `SELECT` + selectClubColumns + ` FROM clubs WHERE id = ?`

const listClubsSQL = `SELECT` + selectClubColumns + ` FROM clubs ORDER BY id`

const insertMissSQL = `INSERT INTO ingest_misses (club_id, status, reason) VALUES (?,?,?)`
