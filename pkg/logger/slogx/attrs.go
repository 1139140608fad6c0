package slogx

import "log/slog"

func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

func NoteID(id int64) slog.Attr {
	return slog.Int64("note_id", id)
}

func LinkID(id int64) slog.Attr {
	return slog.Int64("link_id", id)
}

func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}
