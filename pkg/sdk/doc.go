// Package curator provides an embedded Go client for the curator catalog
// discovery engine: intent-aware relevance search over a library catalog
// snapshot plus a grounded conversational assistant.
//
// The client runs fully in-process. It needs a catalog snapshot file;
// a completion provider is optional and only required for live chat
// replies (without one, Chat answers with grounded fallback suggestions).
//
//	client, _ := curator.New(
//	    curator.WithCatalogFile("data/catalog.json"),
//	)
//	defer client.Close()
//
//	items, _ := client.Search(ctx, "python programming", 10)
//	reply, _ := client.Chat(ctx, []curator.Message{
//	    {Role: curator.RoleUser, Content: "something fun for a rainy weekend"},
//	})
package curator
