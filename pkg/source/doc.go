// Package source provides translation-tree sources for the i18n store:
// filesystem documents, HTTP endpoints, S3-compatible object storage,
// Postgres tables, and Redis keys with pub/sub invalidation.
//
// Every source implements i18n.Source and plugs into Store.Load, LoadAll,
// Refresh, or a Refresher. Documents are JSON or YAML trees of string
// leaves:
//
//	{
//	  "navbar": { "title": "Welcome" },
//	  "greeting": "Hi {{name}}"
//	}
//
// # Filesystem
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	sources, _ := source.Dir(localesFS, "locales") // en.json, fa.json, …
//	store.LoadAll(ctx, sources)
//
// # Remote sources
//
//	store.Load(ctx, i18n.English, source.HTTP("https://cdn.example.com/i18n/en.json"))
//
//	s3src, _ := source.S3(source.S3Config{Bucket: "assets", Region: "eu-west-1"}, "i18n/en.yaml")
//	store.Load(ctx, i18n.English, s3src)
//
// # Database-backed translations
//
// Postgres sources read (language, key, value) rows and reassemble the
// nested tree; Migrate creates the backing table:
//
//	_ = source.Migrate(ctx, pool, log)
//	src, _ := source.Postgres(pool, i18n.English)
//	store.Load(ctx, i18n.English, src)
//
// # Live invalidation
//
// Redis sources pair with Watch to re-fetch translations when an editor or
// pipeline publishes an invalidation, pushing the change through the
// store's reactive projection:
//
//	src, _ := source.Redis(client, "i18n:en")
//	stop, _ := source.Watch(ctx, client, "i18n:invalidate", func(ctx context.Context, lang i18n.Language) {
//		store.Refresh(ctx, i18n.English, src)
//	})
//	defer stop()
package source
