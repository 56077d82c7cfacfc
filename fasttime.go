package lazylog

import "time"

// appendTimestampUTC appends t as "YYYY-MM-DDTHH:MM:SS.nnnnnnnnnZ" with a
// fixed nine-digit fraction, avoiding time.Format's layout interpreter on
// the flush path.
func appendTimestampUTC(buf []byte, t time.Time) []byte {
	t = t.UTC()
	year, month, day := t.Date()
	if year < 0 || year > 9999 {
		return append(buf, t.Format("2006-01-02T15:04:05.000000000Z07:00")...)
	}
	hour, min, sec := t.Clock()
	buf = appendFourDigits(buf, year)
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, int(month))
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, day)
	buf = append(buf, 'T')
	buf = appendTwoDigits(buf, hour)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, min)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, sec)
	buf = append(buf, '.')
	buf = appendNineDigits(buf, t.Nanosecond())
	buf = append(buf, 'Z')
	return buf
}

func appendNineDigits(buf []byte, nano int) []byte {
	var digits [9]byte
	for i := 8; i >= 0; i-- {
		digits[i] = byte('0' + nano%10)
		nano /= 10
	}
	return append(buf, digits[:]...)
}

func appendFourDigits(buf []byte, v int) []byte {
	buf = appendTwoDigits(buf, v/100)
	return appendTwoDigits(buf, v%100)
}

func appendTwoDigits(buf []byte, value int) []byte {
	buf = append(buf, byte('0'+value/10))
	return append(buf, byte('0'+value%10))
}
