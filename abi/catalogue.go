package abi

// Catalogue identifies the constant set a host speaks.
type Catalogue struct {
	// Module is the import module name of the entry points.
	Module string

	// Success is the status value that denotes success. Every other status
	// value is an error code.
	Success Errno
}

// Unstable is the catalogue of the wasi_unstable ABI described by this package.
var Unstable = Catalogue{
	Module:  "wasi_unstable",
	Success: ESUCCESS,
}

const (
	ADVICE_NORMAL     Advice = 0
	ADVICE_SEQUENTIAL Advice = 1
	ADVICE_RANDOM     Advice = 2
	ADVICE_WILLNEED   Advice = 3
	ADVICE_DONTNEED   Advice = 4
	ADVICE_NOREUSE    Advice = 5
)

const (
	CLOCK_REALTIME           ClockID = 0
	CLOCK_MONOTONIC          ClockID = 1
	CLOCK_PROCESS_CPUTIME_ID ClockID = 2
	CLOCK_THREAD_CPUTIME_ID  ClockID = 3
)

const DIRCOOKIE_START DirCookie = 0

const (
	ESUCCESS        Errno = 0
	E2BIG           Errno = 1
	EACCES          Errno = 2
	EADDRINUSE      Errno = 3
	EADDRNOTAVAIL   Errno = 4
	EAFNOSUPPORT    Errno = 5
	EAGAIN          Errno = 6
	EALREADY        Errno = 7
	EBADF           Errno = 8
	EBADMSG         Errno = 9
	EBUSY           Errno = 10
	ECANCELED       Errno = 11
	ECHILD          Errno = 12
	ECONNABORTED    Errno = 13
	ECONNREFUSED    Errno = 14
	ECONNRESET      Errno = 15
	EDEADLK         Errno = 16
	EDESTADDRREQ    Errno = 17
	EDOM            Errno = 18
	EDQUOT          Errno = 19
	EEXIST          Errno = 20
	EFAULT          Errno = 21
	EFBIG           Errno = 22
	EHOSTUNREACH    Errno = 23
	EIDRM           Errno = 24
	EILSEQ          Errno = 25
	EINPROGRESS     Errno = 26
	EINTR           Errno = 27
	EINVAL          Errno = 28
	EIO             Errno = 29
	EISCONN         Errno = 30
	EISDIR          Errno = 31
	ELOOP           Errno = 32
	EMFILE          Errno = 33
	EMLINK          Errno = 34
	EMSGSIZE        Errno = 35
	EMULTIHOP       Errno = 36
	ENAMETOOLONG    Errno = 37
	ENETDOWN        Errno = 38
	ENETRESET       Errno = 39
	ENETUNREACH     Errno = 40
	ENFILE          Errno = 41
	ENOBUFS         Errno = 42
	ENODEV          Errno = 43
	ENOENT          Errno = 44
	ENOEXEC         Errno = 45
	ENOLCK          Errno = 46
	ENOLINK         Errno = 47
	ENOMEM          Errno = 48
	ENOMSG          Errno = 49
	ENOPROTOOPT     Errno = 50
	ENOSPC          Errno = 51
	ENOSYS          Errno = 52
	ENOTCONN        Errno = 53
	ENOTDIR         Errno = 54
	ENOTEMPTY       Errno = 55
	ENOTRECOVERABLE Errno = 56
	ENOTSOCK        Errno = 57
	ENOTSUP         Errno = 58
	ENOTTY          Errno = 59
	ENXIO           Errno = 60
	EOVERFLOW       Errno = 61
	EOWNERDEAD      Errno = 62
	EPERM           Errno = 63
	EPIPE           Errno = 64
	EPROTO          Errno = 65
	EPROTONOSUPPORT Errno = 66
	EPROTOTYPE      Errno = 67
	ERANGE          Errno = 68
	EROFS           Errno = 69
	ESPIPE          Errno = 70
	ESRCH           Errno = 71
	ESTALE          Errno = 72
	ETIMEDOUT       Errno = 73
	ETXTBSY         Errno = 74
	EXDEV           Errno = 75
	ENOTCAPABLE     Errno = 76
)

const EVENT_FD_READWRITE_HANGUP EventRwFlags = 0x0001

const (
	EVENTTYPE_CLOCK    EventType = 0
	EVENTTYPE_FD_READ  EventType = 1
	EVENTTYPE_FD_WRITE EventType = 2
)

const (
	FDFLAG_APPEND   FdFlags = 0x0001
	FDFLAG_DSYNC    FdFlags = 0x0002
	FDFLAG_NONBLOCK FdFlags = 0x0004
	FDFLAG_RSYNC    FdFlags = 0x0008
	FDFLAG_SYNC     FdFlags = 0x0010
)

const (
	FILETYPE_UNKNOWN          FileType = 0
	FILETYPE_BLOCK_DEVICE     FileType = 1
	FILETYPE_CHARACTER_DEVICE FileType = 2
	FILETYPE_DIRECTORY        FileType = 3
	FILETYPE_REGULAR_FILE     FileType = 4
	FILETYPE_SOCKET_DGRAM     FileType = 5
	FILETYPE_SOCKET_STREAM    FileType = 6
	FILETYPE_SYMBOLIC_LINK    FileType = 7
)

const (
	FILESTAT_SET_ATIM     FstFlags = 0x0001
	FILESTAT_SET_ATIM_NOW FstFlags = 0x0002
	FILESTAT_SET_MTIM     FstFlags = 0x0004
	FILESTAT_SET_MTIM_NOW FstFlags = 0x0008
)

const LOOKUP_SYMLINK_FOLLOW LookupFlags = 0x00000001

const (
	O_CREAT     OFlags = 0x0001
	O_DIRECTORY OFlags = 0x0002
	O_EXCL      OFlags = 0x0004
	O_TRUNC     OFlags = 0x0008
)

const PREOPENTYPE_DIR PreopenType = 0

const (
	SOCK_RECV_PEEK    RiFlags = 0x0001
	SOCK_RECV_WAITALL RiFlags = 0x0002
)

const (
	RIGHT_FD_DATASYNC             Rights = 1 << 0
	RIGHT_FD_READ                 Rights = 1 << 1
	RIGHT_FD_SEEK                 Rights = 1 << 2
	RIGHT_FD_FDSTAT_SET_FLAGS     Rights = 1 << 3
	RIGHT_FD_SYNC                 Rights = 1 << 4
	RIGHT_FD_TELL                 Rights = 1 << 5
	RIGHT_FD_WRITE                Rights = 1 << 6
	RIGHT_FD_ADVISE               Rights = 1 << 7
	RIGHT_FD_ALLOCATE             Rights = 1 << 8
	RIGHT_PATH_CREATE_DIRECTORY   Rights = 1 << 9
	RIGHT_PATH_CREATE_FILE        Rights = 1 << 10
	RIGHT_PATH_LINK_SOURCE        Rights = 1 << 11
	RIGHT_PATH_LINK_TARGET        Rights = 1 << 12
	RIGHT_PATH_OPEN               Rights = 1 << 13
	RIGHT_FD_READDIR              Rights = 1 << 14
	RIGHT_PATH_READLINK           Rights = 1 << 15
	RIGHT_PATH_RENAME_SOURCE      Rights = 1 << 16
	RIGHT_PATH_RENAME_TARGET      Rights = 1 << 17
	RIGHT_PATH_FILESTAT_GET       Rights = 1 << 18
	RIGHT_PATH_FILESTAT_SET_SIZE  Rights = 1 << 19
	RIGHT_PATH_FILESTAT_SET_TIMES Rights = 1 << 20
	RIGHT_FD_FILESTAT_GET         Rights = 1 << 21
	RIGHT_FD_FILESTAT_SET_SIZE    Rights = 1 << 22
	RIGHT_FD_FILESTAT_SET_TIMES   Rights = 1 << 23
	RIGHT_PATH_SYMLINK            Rights = 1 << 24
	RIGHT_PATH_REMOVE_DIRECTORY   Rights = 1 << 25
	RIGHT_PATH_UNLINK_FILE        Rights = 1 << 26
	RIGHT_POLL_FD_READWRITE       Rights = 1 << 27
	RIGHT_SOCK_SHUTDOWN           Rights = 1 << 28
)

const SOCK_RECV_DATA_TRUNCATED RoFlags = 0x0001

const (
	SHUT_RD SdFlags = 0x01
	SHUT_WR SdFlags = 0x02
)

const (
	SIGHUP    Signal = 1
	SIGINT    Signal = 2
	SIGQUIT   Signal = 3
	SIGILL    Signal = 4
	SIGTRAP   Signal = 5
	SIGABRT   Signal = 6
	SIGBUS    Signal = 7
	SIGFPE    Signal = 8
	SIGKILL   Signal = 9
	SIGUSR1   Signal = 10
	SIGSEGV   Signal = 11
	SIGUSR2   Signal = 12
	SIGPIPE   Signal = 13
	SIGALRM   Signal = 14
	SIGTERM   Signal = 15
	SIGCHLD   Signal = 16
	SIGCONT   Signal = 17
	SIGSTOP   Signal = 18
	SIGTSTP   Signal = 19
	SIGTTIN   Signal = 20
	SIGTTOU   Signal = 21
	SIGURG    Signal = 22
	SIGXCPU   Signal = 23
	SIGXFSZ   Signal = 24
	SIGVTALRM Signal = 25
	SIGPROF   Signal = 26
	SIGWINCH  Signal = 27
	SIGPOLL   Signal = 28
	SIGPWR    Signal = 29
	SIGSYS    Signal = 30
)

const SUBSCRIPTION_CLOCK_ABSTIME SubclockFlags = 0x0001

const (
	WHENCE_CUR Whence = 0
	WHENCE_END Whence = 1
	WHENCE_SET Whence = 2
)
