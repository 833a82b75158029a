package screen

// Arms of a border junction.
const (
	armUp = 1 << iota
	armDown
	armLeft
	armRight
)

var junctions = [16]rune{
	0:                                   ' ',
	armUp:                               '│',
	armDown:                             '│',
	armUp | armDown:                     '│',
	armLeft:                             '─',
	armRight:                            '─',
	armLeft | armRight:                  '─',
	armDown | armRight:                  '┌',
	armDown | armLeft:                   '┐',
	armUp | armRight:                    '└',
	armUp | armLeft:                     '┘',
	armUp | armDown | armRight:          '├',
	armUp | armDown | armLeft:           '┤',
	armDown | armLeft | armRight:        '┬',
	armUp | armLeft | armRight:          '┴',
	armUp | armDown | armLeft | armRight: '┼',
}

const (
	hLine = '─'
	vLine = '│'
)
