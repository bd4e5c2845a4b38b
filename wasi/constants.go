package wasi

import "github.com/wippyai/wasi-shim/abi"

const (
	AdviceNormal     = abi.ADVICE_NORMAL
	AdviceSequential = abi.ADVICE_SEQUENTIAL
	AdviceRandom     = abi.ADVICE_RANDOM
	AdviceWillneed   = abi.ADVICE_WILLNEED
	AdviceDontneed   = abi.ADVICE_DONTNEED
	AdviceNoreuse    = abi.ADVICE_NOREUSE
)

const (
	ClockRealtime         = abi.CLOCK_REALTIME
	ClockMonotonic        = abi.CLOCK_MONOTONIC
	ClockProcessCputimeID = abi.CLOCK_PROCESS_CPUTIME_ID
	ClockThreadCputimeID  = abi.CLOCK_THREAD_CPUTIME_ID
)

const DircookieStart = abi.DIRCOOKIE_START

// Error codes. Success has no constant here: it is never an Errno.
const (
	E2BIG           = Errno(abi.E2BIG)
	EACCES          = Errno(abi.EACCES)
	EADDRINUSE      = Errno(abi.EADDRINUSE)
	EADDRNOTAVAIL   = Errno(abi.EADDRNOTAVAIL)
	EAFNOSUPPORT    = Errno(abi.EAFNOSUPPORT)
	EAGAIN          = Errno(abi.EAGAIN)
	EALREADY        = Errno(abi.EALREADY)
	EBADF           = Errno(abi.EBADF)
	EBADMSG         = Errno(abi.EBADMSG)
	EBUSY           = Errno(abi.EBUSY)
	ECANCELED       = Errno(abi.ECANCELED)
	ECHILD          = Errno(abi.ECHILD)
	ECONNABORTED    = Errno(abi.ECONNABORTED)
	ECONNREFUSED    = Errno(abi.ECONNREFUSED)
	ECONNRESET      = Errno(abi.ECONNRESET)
	EDEADLK         = Errno(abi.EDEADLK)
	EDESTADDRREQ    = Errno(abi.EDESTADDRREQ)
	EDOM            = Errno(abi.EDOM)
	EDQUOT          = Errno(abi.EDQUOT)
	EEXIST          = Errno(abi.EEXIST)
	EFAULT          = Errno(abi.EFAULT)
	EFBIG           = Errno(abi.EFBIG)
	EHOSTUNREACH    = Errno(abi.EHOSTUNREACH)
	EIDRM           = Errno(abi.EIDRM)
	EILSEQ          = Errno(abi.EILSEQ)
	EINPROGRESS     = Errno(abi.EINPROGRESS)
	EINTR           = Errno(abi.EINTR)
	EINVAL          = Errno(abi.EINVAL)
	EIO             = Errno(abi.EIO)
	EISCONN         = Errno(abi.EISCONN)
	EISDIR          = Errno(abi.EISDIR)
	ELOOP           = Errno(abi.ELOOP)
	EMFILE          = Errno(abi.EMFILE)
	EMLINK          = Errno(abi.EMLINK)
	EMSGSIZE        = Errno(abi.EMSGSIZE)
	EMULTIHOP       = Errno(abi.EMULTIHOP)
	ENAMETOOLONG    = Errno(abi.ENAMETOOLONG)
	ENETDOWN        = Errno(abi.ENETDOWN)
	ENETRESET       = Errno(abi.ENETRESET)
	ENETUNREACH     = Errno(abi.ENETUNREACH)
	ENFILE          = Errno(abi.ENFILE)
	ENOBUFS         = Errno(abi.ENOBUFS)
	ENODEV          = Errno(abi.ENODEV)
	ENOENT          = Errno(abi.ENOENT)
	ENOEXEC         = Errno(abi.ENOEXEC)
	ENOLCK          = Errno(abi.ENOLCK)
	ENOLINK         = Errno(abi.ENOLINK)
	ENOMEM          = Errno(abi.ENOMEM)
	ENOMSG          = Errno(abi.ENOMSG)
	ENOPROTOOPT     = Errno(abi.ENOPROTOOPT)
	ENOSPC          = Errno(abi.ENOSPC)
	ENOSYS          = Errno(abi.ENOSYS)
	ENOTCONN        = Errno(abi.ENOTCONN)
	ENOTDIR         = Errno(abi.ENOTDIR)
	ENOTEMPTY       = Errno(abi.ENOTEMPTY)
	ENOTRECOVERABLE = Errno(abi.ENOTRECOVERABLE)
	ENOTSOCK        = Errno(abi.ENOTSOCK)
	ENOTSUP         = Errno(abi.ENOTSUP)
	ENOTTY          = Errno(abi.ENOTTY)
	ENXIO           = Errno(abi.ENXIO)
	EOVERFLOW       = Errno(abi.EOVERFLOW)
	EOWNERDEAD      = Errno(abi.EOWNERDEAD)
	EPERM           = Errno(abi.EPERM)
	EPIPE           = Errno(abi.EPIPE)
	EPROTO          = Errno(abi.EPROTO)
	EPROTONOSUPPORT = Errno(abi.EPROTONOSUPPORT)
	EPROTOTYPE      = Errno(abi.EPROTOTYPE)
	ERANGE          = Errno(abi.ERANGE)
	EROFS           = Errno(abi.EROFS)
	ESPIPE          = Errno(abi.ESPIPE)
	ESRCH           = Errno(abi.ESRCH)
	ESTALE          = Errno(abi.ESTALE)
	ETIMEDOUT       = Errno(abi.ETIMEDOUT)
	ETXTBSY         = Errno(abi.ETXTBSY)
	EXDEV           = Errno(abi.EXDEV)
	ENOTCAPABLE     = Errno(abi.ENOTCAPABLE)
)

const EventFdReadwriteHangup = abi.EVENT_FD_READWRITE_HANGUP

const (
	EventtypeClock   = abi.EVENTTYPE_CLOCK
	EventtypeFdRead  = abi.EVENTTYPE_FD_READ
	EventtypeFdWrite = abi.EVENTTYPE_FD_WRITE
)

const (
	FdflagAppend   = abi.FDFLAG_APPEND
	FdflagDsync    = abi.FDFLAG_DSYNC
	FdflagNonblock = abi.FDFLAG_NONBLOCK
	FdflagRsync    = abi.FDFLAG_RSYNC
	FdflagSync     = abi.FDFLAG_SYNC
)

const (
	FiletypeUnknown         = abi.FILETYPE_UNKNOWN
	FiletypeBlockDevice     = abi.FILETYPE_BLOCK_DEVICE
	FiletypeCharacterDevice = abi.FILETYPE_CHARACTER_DEVICE
	FiletypeDirectory       = abi.FILETYPE_DIRECTORY
	FiletypeRegularFile     = abi.FILETYPE_REGULAR_FILE
	FiletypeSocketDgram     = abi.FILETYPE_SOCKET_DGRAM
	FiletypeSocketStream    = abi.FILETYPE_SOCKET_STREAM
	FiletypeSymbolicLink    = abi.FILETYPE_SYMBOLIC_LINK
)

const (
	FilestatSetAtim    = abi.FILESTAT_SET_ATIM
	FilestatSetAtimNow = abi.FILESTAT_SET_ATIM_NOW
	FilestatSetMtim    = abi.FILESTAT_SET_MTIM
	FilestatSetMtimNow = abi.FILESTAT_SET_MTIM_NOW
)

const LookupSymlinkFollow = abi.LOOKUP_SYMLINK_FOLLOW

const (
	OCreat     = abi.O_CREAT
	ODirectory = abi.O_DIRECTORY
	OExcl      = abi.O_EXCL
	OTrunc     = abi.O_TRUNC
)

const PreopentypeDir = abi.PREOPENTYPE_DIR

const (
	SockRecvPeek    = abi.SOCK_RECV_PEEK
	SockRecvWaitall = abi.SOCK_RECV_WAITALL
)

const (
	RightFdDatasync           = abi.RIGHT_FD_DATASYNC
	RightFdRead               = abi.RIGHT_FD_READ
	RightFdSeek               = abi.RIGHT_FD_SEEK
	RightFdFdstatSetFlags     = abi.RIGHT_FD_FDSTAT_SET_FLAGS
	RightFdSync               = abi.RIGHT_FD_SYNC
	RightFdTell               = abi.RIGHT_FD_TELL
	RightFdWrite              = abi.RIGHT_FD_WRITE
	RightFdAdvise             = abi.RIGHT_FD_ADVISE
	RightFdAllocate           = abi.RIGHT_FD_ALLOCATE
	RightPathCreateDirectory  = abi.RIGHT_PATH_CREATE_DIRECTORY
	RightPathCreateFile       = abi.RIGHT_PATH_CREATE_FILE
	RightPathLinkSource       = abi.RIGHT_PATH_LINK_SOURCE
	RightPathLinkTarget       = abi.RIGHT_PATH_LINK_TARGET
	RightPathOpen             = abi.RIGHT_PATH_OPEN
	RightFdReaddir            = abi.RIGHT_FD_READDIR
	RightPathReadlink         = abi.RIGHT_PATH_READLINK
	RightPathRenameSource     = abi.RIGHT_PATH_RENAME_SOURCE
	RightPathRenameTarget     = abi.RIGHT_PATH_RENAME_TARGET
	RightPathFilestatGet      = abi.RIGHT_PATH_FILESTAT_GET
	RightPathFilestatSetSize  = abi.RIGHT_PATH_FILESTAT_SET_SIZE
	RightPathFilestatSetTimes = abi.RIGHT_PATH_FILESTAT_SET_TIMES
	RightFdFilestatGet        = abi.RIGHT_FD_FILESTAT_GET
	RightFdFilestatSetSize    = abi.RIGHT_FD_FILESTAT_SET_SIZE
	RightFdFilestatSetTimes   = abi.RIGHT_FD_FILESTAT_SET_TIMES
	RightPathSymlink          = abi.RIGHT_PATH_SYMLINK
	RightPathRemoveDirectory  = abi.RIGHT_PATH_REMOVE_DIRECTORY
	RightPathUnlinkFile       = abi.RIGHT_PATH_UNLINK_FILE
	RightPollFdReadwrite      = abi.RIGHT_POLL_FD_READWRITE
	RightSockShutdown         = abi.RIGHT_SOCK_SHUTDOWN
)

const SockRecvDataTruncated = abi.SOCK_RECV_DATA_TRUNCATED

const (
	ShutRd = abi.SHUT_RD
	ShutWr = abi.SHUT_WR
)

const (
	SIGHUP    = abi.SIGHUP
	SIGINT    = abi.SIGINT
	SIGQUIT   = abi.SIGQUIT
	SIGILL    = abi.SIGILL
	SIGTRAP   = abi.SIGTRAP
	SIGABRT   = abi.SIGABRT
	SIGBUS    = abi.SIGBUS
	SIGFPE    = abi.SIGFPE
	SIGKILL   = abi.SIGKILL
	SIGUSR1   = abi.SIGUSR1
	SIGSEGV   = abi.SIGSEGV
	SIGUSR2   = abi.SIGUSR2
	SIGPIPE   = abi.SIGPIPE
	SIGALRM   = abi.SIGALRM
	SIGTERM   = abi.SIGTERM
	SIGCHLD   = abi.SIGCHLD
	SIGCONT   = abi.SIGCONT
	SIGSTOP   = abi.SIGSTOP
	SIGTSTP   = abi.SIGTSTP
	SIGTTIN   = abi.SIGTTIN
	SIGTTOU   = abi.SIGTTOU
	SIGURG    = abi.SIGURG
	SIGXCPU   = abi.SIGXCPU
	SIGXFSZ   = abi.SIGXFSZ
	SIGVTALRM = abi.SIGVTALRM
	SIGPROF   = abi.SIGPROF
	SIGWINCH  = abi.SIGWINCH
	SIGPOLL   = abi.SIGPOLL
	SIGPWR    = abi.SIGPWR
	SIGSYS    = abi.SIGSYS
)

const SubscriptionClockAbstime = abi.SUBSCRIPTION_CLOCK_ABSTIME

const (
	WhenceCur = abi.WHENCE_CUR
	WhenceEnd = abi.WHENCE_END
	WhenceSet = abi.WHENCE_SET
)
