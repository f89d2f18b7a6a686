// Package infer works out the album and artist shared by every track of a
// folder.
//
// The artist and album tags of the folder's tracks are counted in
// frequency tables; the most frequent value is proposed to the operator,
// who can accept it or type a replacement:
//
//	engine := infer.NewEngine(console)
//	res, err := engine.Infer(dir, tracks)
//	// res.Artist, res.Album apply to the whole folder
//
// Ties go to the value seen first, so tracks should be passed in file-name
// order.
package infer
