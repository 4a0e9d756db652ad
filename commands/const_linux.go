package commands

const (
	_etc = "/usr/local/etc/uhppoted"
	_var = "/usr/local/var/uhppoted"

	DEFAULT_WORKDIR     = _var + "/classroom"
	DEFAULT_CREDENTIALS = _etc + "/classroom/.google/credentials.json"
)
