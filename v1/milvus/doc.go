// Package milvus is a client for the Milvus REST API (v2, /v2/vectordb).
//
// # Architecture
//
// Every endpoint is one entry of an operation table: method, path, the body
// fields it accepts in wire order, and the subset that is required.
// NewRequest turns an operation name and Params into an immutable Request;
// Client.Send turns a Request into a Response. The endpoint groups
// (Collection, Vector, Role, User) are thin typed shells over that pipeline.
//
//	typed method -> Params -> NewRequest -> Client.Send -> *Response
//
// # Absent fields
//
// A Params key is absent when it is missing or nil, including a nil pointer,
// slice or map. Absent keys never reach the wire. Everything else is sent as
// given, so "", false, 0 and empty slices are kept:
//
//	milvus.Params{"collectionName": "docs", "dbName": (*string)(nil)}
//	// -> {"collectionName":"docs"}
//
// A request without fields is sent as {}.
//
// # Usage
//
//	client, err := milvus.NewClient(milvus.FromHost("http://localhost", "19530").
//	    WithToken("root:Milvus"))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	resp, err := client.Collection().Create(ctx, "docs", &milvus.CreateCollectionOptions{
//	    Dimension: milvus.Int(768),
//	})
//	if err != nil {
//	    return err // argument or transport error
//	}
//	if apiErr := resp.Err(); apiErr != nil {
//	    return apiErr // Milvus answered with code != 0
//	}
//
//	resp, _ = client.Collection().GetStats(ctx, "docs", nil)
//	rows, _ := resp.Int("data.rowCount")
//
// # Errors
//
// Three outcomes are kept apart:
//   - argument errors (ErrInvalidArgument, ErrMissingField, ErrUnknownField)
//     are returned before any I/O
//   - transport errors (*TransportError, errors.Is(err, ErrTransport)) are
//     returned when no HTTP response arrived; the Response is nil
//   - everything else is a Response, whatever the status or envelope code;
//     Response.Err reports a non-zero code as *APIError on request
//
// # Configuration
//
// NewConfig reads MILVUS_TOKEN, MILVUS_HOST (with scheme), MILVUS_PORT,
// MILVUS_TIMEOUT_SECONDS and MILVUS_VERIFY_TLS. TLS certificates are not
// verified unless VerifyTLS is set.
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(milvus.NewConfig),
//	    milvus.FXModule,
//	    fx.Invoke(func(c *milvus.Client) { /* ... */ }),
//	)
//
// # Thread Safety
//
// A Client is immutable after NewClient and safe for concurrent use.
package milvus
