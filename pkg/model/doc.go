// Package model defines the database models for Conduit.
//
// This package contains GORM models that map to the Conduit database schema.
// The schema mirrors the original Django application's tables.
//
// # Core Models
//
//   - User: login credentials and the opaque authentication token
//   - Profile: a user's public authoring identity, owner of articles
//   - Tag: a named label with a URL-safe slug, many-to-many with articles
//   - Article: the central entity; title, body, slug, author, tags
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - users: accounts and tokens
//   - profiles: authoring identities (one per user, cascade deleted)
//   - tags: tag labels and slugs
//   - articles: article rows
//   - article_tags: the article/tag join table
package model
