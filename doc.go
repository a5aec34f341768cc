// Project Structure Overview
/*
atelier-backend/
├── cmd/
│   ├── server/        HTTP API entry point
│   └── cli/           maintenance commands (seed, hash-password, set-password)
├── internal/
│   ├── config/        environment configuration
│   ├── database/      data directory bootstrap and default documents
│   ├── store/         JSON document store and error taxonomy
│   ├── models/        products, messages, home and contact documents
│   ├── services/      catalog, inbox, content, auth, uploads, notifications
│   ├── handlers/      gin handlers
│   ├── middleware/    auth, CORS, i18n, logging, rate limiting
│   ├── i18n/          en and fa message catalogs
│   ├── utils/         responses, validation, tokens, passwords, pagination
│   ├── router/        route table
│   └── tests/         end-to-end API tests
└── go.mod
*/

// Package atelier is the content backend of a bilingual clothing brand
// site. Every collection lives in one JSON file under DATA_DIR.
package atelier
